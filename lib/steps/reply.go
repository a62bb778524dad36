package steps

import (
	"errors"
	"fmt"
)

// HelpText is the usage reply for the command form.
const HelpText = "【安全提示】请务必在【私聊】中使用！\n输入格式：账号#密码#步数\n例如：example@mail.com#password123#20000"

const (
	replyGroupChannel = "⚠️ 为了您的账号安全，【修改步数】指令仅限【私聊】使用！\n密码已在群聊暴露，建议您尽快修改密码。"
	replyOutOfRange   = "❌ 步数设置不合理（建议 0-100,000 之间）。"
	replyMissingCKey  = "⚠️ 插件未配置 API Key (ckey)，请联系管理员在后台设置。"
	replyTimeout      = "⚠️ 请求超时，接口服务器响应过慢，请稍后重试。"
	replyBadFormat    = "⚠️ 接口返回数据格式错误，解析失败。"
)

// SuccessReply formats a successful change.
func SuccessReply(r Result) string {
	return fmt.Sprintf("✅ 修改成功！\n账号：%s\n当前步数：%d\n提示：%s", r.Account, r.Steps, r.Message)
}

// ReplyFor turns any error from the pipeline into the single user-facing reply.
func ReplyFor(err error) string {
	var (
		statusErr *StatusError
		netErr    *NetworkError
		formatErr *FormatError
		rejection *RemoteRejection
	)
	switch {
	case errors.Is(err, ErrParse):
		return HelpText
	case errors.Is(err, ErrGroupChannel):
		return replyGroupChannel
	case errors.Is(err, ErrStepsOutOfRange):
		return replyOutOfRange
	case errors.Is(err, ErrMissingCKey):
		return replyMissingCKey
	case errors.Is(err, ErrTimeout):
		return replyTimeout
	case errors.As(err, &statusErr):
		return fmt.Sprintf("❌ 接口请求失败 (HTTP %d)，请稍后再试。", statusErr.Code)
	case errors.As(err, &formatErr):
		return replyBadFormat
	case errors.As(err, &rejection):
		return "❌ 修改失败\n原因：" + rejection.Message
	case errors.As(err, &netErr):
		return "⚠️ 网络请求异常：" + netErr.Err.Error()
	default:
		return "⚠️ 发生未知错误：" + err.Error()
	}
}
