package steps

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// commandPrefixes are accepted in front of the command name besides the host's own prefix.
var commandPrefixes = []string{"/", "!", "！", "."}

// commandAlias is the Chinese alias of the command name.
const commandAlias = "改步数"

// Event is what the handler needs from one incoming chat message.
type Event interface {
	PlainText() string
	Channel() ChannelKind
	// CommandPrefix is the host's configured prefix; empty if the host has none.
	CommandPrefix() string
	// Recall deletes the original message; ErrRecallUnsupported when the host cannot.
	Recall() error
}

// Handler runs one message through parse, guard, validate, request and reply.
// It keeps no per-request state, so one Handler serves concurrent messages.
type Handler struct {
	cfg    Config
	client *Client
	log    *zap.Logger
}

// NewHandler builds a Handler. A nil logger discards logs.
func NewHandler(cfg Config, client *Client, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := cfg.normalize()
	if err != nil {
		log.Warn("invalid config, using defaults", zap.Error(err))
	}
	if client == nil {
		client = NewClient(cfg)
	}
	return &Handler{cfg: cfg, client: client, log: log}
}

// Match reports whether text is a step request for this handler's trigger mode.
// explicit is true for the command form. Match has no side effects.
func (h *Handler) Match(text, hostPrefix string) (payload string, explicit bool, ok bool) {
	text = strings.TrimSpace(text)
	if h.cfg.Trigger != TriggerPassive {
		if rest, found := h.cutCommand(text, hostPrefix); found {
			return rest, true, true
		}
	}
	if h.cfg.Trigger != TriggerCommand && LooksLikeRequest(text) {
		return text, false, true
	}
	return "", false, false
}

// Claims reports whether Handle would answer text: any explicit command, or a passive
// message that parses. Like Match it has no side effects.
func (h *Handler) Claims(text, hostPrefix string) bool {
	payload, explicit, ok := h.Match(text, hostPrefix)
	if !ok {
		return false
	}
	if explicit {
		return true
	}
	_, err := Parse(payload)
	return err == nil
}

func (h *Handler) cutCommand(text, hostPrefix string) (string, bool) {
	prefixes := commandPrefixes
	if hostPrefix != "" {
		prefixes = append([]string{hostPrefix}, commandPrefixes...)
	}
	for _, name := range []string{h.cfg.Command, commandAlias} {
		for _, prefix := range prefixes {
			head := prefix + name
			if !strings.HasPrefix(text, head) {
				continue
			}
			rest := text[len(head):]
			// "/stepsfoo" is a different command.
			if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
				continue
			}
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// Handle processes ev and returns the reply text. handled is false when the message is
// not a step request at all, in which case nothing must be sent.
func (h *Handler) Handle(ctx context.Context, ev Event) (reply string, handled bool) {
	payload, explicit, ok := h.Match(ev.PlainText(), ev.CommandPrefix())
	if !ok {
		return "", false
	}
	log := h.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.Stringer("channel", ev.Channel()),
		zap.Bool("command", explicit),
	)

	if explicit && payload == "" {
		return HelpText, true
	}
	req, err := Parse(payload)
	if err != nil {
		if !explicit {
			// Passive listener: anything with two '#' that is not ours is just chat.
			return "", false
		}
		log.Debug("parse failed", zap.Error(err))
		return ReplyFor(err), true
	}

	if err := Guard(ev, log); err != nil {
		return ReplyFor(err), true
	}
	if err := Validate(req); err != nil {
		log.Info("request rejected", zap.Error(err))
		return ReplyFor(err), true
	}

	res, err := h.client.Change(ctx, req)
	if err != nil {
		log.Warn("step change failed", zap.Error(err))
		return ReplyFor(err), true
	}
	log.Info("step change succeeded", zap.Int("steps", res.Steps))
	return SuccessReply(res), true
}

// Guard refuses group messages and tries to recall them; recall failure is only logged.
func Guard(ev Event, log *zap.Logger) error {
	if ev.Channel() != ChannelGroup {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Warn("credentials posted in group")
	if err := ev.Recall(); err != nil {
		log.Warn("recall message failed", zap.Error(err))
	}
	return ErrGroupChannel
}
