// Command stepsctl runs the step-change pipeline from a terminal, without a chat host.
// It reads the same plugin config as the bot (data/config/plugin-xiaomi-steps/config.yaml)
// plus a .env file in the working directory when present.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/logging"
	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/steps"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	inGroup bool
)

var rootCmd = &cobra.Command{
	Use:   "stepsctl",
	Short: "Change a Xiaomi/Zepp step count the way the chat plugin does",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; a missing file is fine.
		_ = godotenv.Load()
		if dataDir == "" {
			dataDir = os.Getenv("DATA_DIR")
		}
		if dataDir == "" {
			dataDir = "data"
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.L().Sync()
	},
	SilenceUsage: true,
}

var sendCmd = &cobra.Command{
	Use:   "send <account#password#steps>",
	Short: "Send one message through the plugin pipeline and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := steps.LoadConfig(dataDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		h := steps.NewHandler(cfg, nil, logging.Named("stepsctl"))
		ev := consoleEvent{text: strings.Join(args, " "), group: inGroup}
		reply, handled := h.Handle(cmd.Context(), ev)
		if !handled {
			return fmt.Errorf("not a step request; usage:\n%s", steps.HelpText)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default plugin config file if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := steps.SaveDefaultConfig(dataDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

// consoleEvent is a terminal "message"; it cannot be recalled.
type consoleEvent struct {
	text  string
	group bool
}

func (e consoleEvent) PlainText() string { return e.text }

func (e consoleEvent) CommandPrefix() string { return "/" }

func (e consoleEvent) Channel() steps.ChannelKind {
	if e.group {
		return steps.ChannelGroup
	}
	return steps.ChannelDirect
}

func (e consoleEvent) Recall() error { return steps.ErrRecallUnsupported }

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data root (default $DATA_DIR or ./data)")
	sendCmd.Flags().BoolVar(&inGroup, "group", false, "pretend the message was sent in a group")
	rootCmd.AddCommand(sendCmd, initConfigCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
