package steps

// HostContext is the part of a host message context (protocol.Context) the handler reads.
type HostContext interface {
	PlainText() string
	GroupID() string
	CommandPrefix() string
}

// recaller is implemented by host contexts that can delete the current message.
type recaller interface {
	RecallMessage() error
}

// FromHost adapts a host message context to Event.
func FromHost(ctx HostContext) Event {
	return hostEvent{ctx: ctx}
}

type hostEvent struct {
	ctx HostContext
}

func (e hostEvent) PlainText() string { return e.ctx.PlainText() }

func (e hostEvent) CommandPrefix() string { return e.ctx.CommandPrefix() }

// Channel: any group ID other than the "0" some adapters send for private chats means group.
func (e hostEvent) Channel() ChannelKind {
	if gid := e.ctx.GroupID(); gid != "" && gid != "0" {
		return ChannelGroup
	}
	return ChannelDirect
}

func (e hostEvent) Recall() error {
	if r, ok := e.ctx.(recaller); ok {
		return r.RecallMessage()
	}
	return ErrRecallUnsupported
}
