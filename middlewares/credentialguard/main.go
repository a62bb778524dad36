// Package credentialguard provides a middleware that stops "account#password#steps" messages
// sent in groups before any plugin sees them: the message is recalled (when the host can)
// and the sender is told the password was exposed.
// Trigger mode and command name are read from data/config/plugin-xiaomi-steps/config.yaml.
package credentialguard

import (
	"os"
	"sync"

	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/logging"
	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/steps"
	"github.com/Hafuunano/Protocol-ConvertTool/protocol"
	"go.uber.org/zap"
)

const middlewareName = "credentialguard"

var (
	mu      sync.Mutex
	matcher *steps.Handler
	dataDir string
	log     = logging.Named(middlewareName)
)

// load builds the matcher from the steps plugin config; failures fall back to defaults.
func load() *steps.Handler {
	mu.Lock()
	defer mu.Unlock()
	if matcher != nil {
		return matcher
	}
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
	}
	cfg, err := steps.LoadConfig(dataDir)
	if err != nil {
		log.Warn("load steps config failed, using defaults", zap.Error(err))
	}
	matcher = steps.NewHandler(cfg, nil, log)
	return matcher
}

// intercept returns the warning to send and true when ctx carries credentials in a group.
func intercept(h *steps.Handler, ctx steps.HostContext) (string, bool) {
	ev := steps.FromHost(ctx)
	if ev.Channel() != steps.ChannelGroup {
		return "", false
	}
	payload, _, ok := h.Match(ev.PlainText(), ev.CommandPrefix())
	if !ok {
		return "", false
	}
	if _, err := steps.Parse(payload); err != nil {
		return "", false
	}
	return steps.ReplyFor(steps.Guard(ev, log)), true
}

// Handler returns a handler that stops the chain for group messages carrying step-change credentials.
// dataDirRoot is the root data directory (e.g. "data"); if empty, DATA_DIR env or "data" is used.
func Handler(dataDirRoot string) func(protocol.Context, func()) {
	if dataDirRoot != "" {
		mu.Lock()
		dataDir = dataDirRoot
		matcher = nil
		mu.Unlock()
	}
	return func(ctx protocol.Context, next func()) {
		if ctx.GroupID() == "" {
			next()
			return
		}
		warning, stop := intercept(load(), ctx)
		if !stop {
			next()
			return
		}
		_ = ctx.Send(protocol.Message{
			protocol.Segment{Type: protocol.SegmentTypeText, Data: map[string]any{"text": warning}},
		})
	}
}
