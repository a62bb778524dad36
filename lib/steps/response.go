package steps

import (
	"errors"

	"github.com/tidwall/gjson"
)

// defaultRemoteMessage is used when the envelope has no msg.
const defaultRemoteMessage = "未知返回信息"

// interpret reads the {code, msg, data.steps} envelope.
// code must be the number 200 for success; data.steps falls back to the requested count.
func interpret(body []byte, requested int) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, &FormatError{Err: errors.New("body is not JSON")}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Result{}, &FormatError{Err: errors.New("body is not a JSON object")}
	}
	msg := defaultRemoteMessage
	if m := root.Get("msg"); m.Exists() {
		msg = m.String()
	}
	code := root.Get("code")
	if code.Type != gjson.Number || code.Num != 200 {
		return Result{}, &RemoteRejection{Message: msg}
	}
	res := Result{Steps: requested, Message: msg}
	if s := root.Get("data.steps"); s.Type == gjson.Number {
		res.Steps = int(s.Int())
	}
	return res, nil
}
