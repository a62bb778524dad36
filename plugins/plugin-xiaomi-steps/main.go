// Package pluginxiaomisteps changes the step count of a Xiaomi/Zepp account from chat.
// Users send "账号#密码#步数" (or "/steps 账号#密码#步数") in a private chat; group messages
// are refused and recalled. Config lives in data/config/plugin-xiaomi-steps/config.yaml.
package pluginxiaomisteps

import (
	"context"
	"os"
	"sync"

	"github.com/Hafuunano/Core-SkillAction/types"
	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/logging"
	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/steps"
	"github.com/Hafuunano/Protocol-ConvertTool/protocol"
	"go.uber.org/zap"
)

// Meta and registration (required: use WithMeta(Meta) then chain).
var Meta = types.NewPluginEngine("plugin-xiaomi-steps-001", steps.PluginName, "skill", true)
var p = protocol.Engine.WithMeta(Meta)

var (
	handlerOnce sync.Once
	handler     *steps.Handler
	log         = logging.Named(steps.PluginName)
)

func init() {
	p.OnMessage().Func(Plugin)
}

func dataDir() string {
	if d := os.Getenv("DATA_DIR"); d != "" {
		return d
	}
	return "data"
}

func getHandler() *steps.Handler {
	handlerOnce.Do(func() {
		cfg, err := steps.LoadConfig(dataDir())
		if err != nil {
			log.Warn("load config failed, using defaults", zap.Error(err))
		}
		handler = steps.NewHandler(cfg, nil, log)
	})
	return handler
}

// Plugin is the required entry. Host calls it for each message with a protocol.Context.
func Plugin(ctx protocol.Context) {
	h := getHandler()
	if !h.Claims(ctx.PlainText(), ctx.CommandPrefix()) {
		return
	}
	// The message carries a password: no other plugin gets to see it.
	ctx.BlockNext()
	ev := steps.FromHost(ctx)
	go func() {
		reply, handled := h.Handle(context.Background(), ev)
		if !handled {
			return
		}
		_ = ctx.Reply(protocol.Message{
			protocol.Segment{Type: protocol.SegmentTypeText, Data: map[string]any{"text": reply}},
		})
	}()
}
