package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSuccess(t *testing.T) {
	res, err := interpret([]byte(`{"code":200,"msg":"ok","data":{"steps":5000}}`), 1)
	require.NoError(t, err)
	assert.Equal(t, Result{Steps: 5000, Message: "ok"}, res)
}

func TestInterpretSuccessDefaults(t *testing.T) {
	res, err := interpret([]byte(`{"code":200}`), 1234)
	require.NoError(t, err)
	assert.Equal(t, 1234, res.Steps)
	assert.Equal(t, defaultRemoteMessage, res.Message)

	res, err = interpret([]byte(`{"code":200,"msg":"ok","data":{"steps":"lots"}}`), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Steps)
}

func TestInterpretRejection(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{`{"code":500,"msg":"账号错误"}`, "账号错误"},
		{`{"code":"200","msg":"string code"}`, "string code"},
		{`{"msg":"no code"}`, "no code"},
		{`{"code":201}`, defaultRemoteMessage},
	}
	for _, tt := range tests {
		_, err := interpret([]byte(tt.body), 1)
		var rej *RemoteRejection
		require.ErrorAs(t, err, &rej, tt.body)
		assert.Equal(t, tt.msg, rej.Message)
	}
}

func TestInterpretFormatError(t *testing.T) {
	for _, body := range []string{"", "<html>502</html>", `{"code":200`, `[1,2]`, `"ok"`} {
		_, err := interpret([]byte(body), 1)
		var fe *FormatError
		assert.ErrorAs(t, err, &fe, body)
	}
}
