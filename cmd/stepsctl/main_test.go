package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/database/config"
	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/steps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dataDir, inGroup = "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init-config", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config", steps.PluginName, "config.yaml"))
	assert.True(t, config.Exists(dir, steps.PluginName))
}

func TestSendDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{"steps":5000}}`))
	}))
	defer srv.Close()
	t.Setenv("XIAOMI_STEPS_CKEY", "k")
	t.Setenv("XIAOMI_STEPS_API_URL", srv.URL)

	out, err := run(t, "send", "--data-dir", t.TempDir(), "a@b.com#pw123#5000")
	require.NoError(t, err)
	assert.Contains(t, out, "修改成功")
	assert.Contains(t, out, "5000")
}

func TestSendGroupIsRefused(t *testing.T) {
	t.Setenv("XIAOMI_STEPS_CKEY", "k")
	t.Setenv("XIAOMI_STEPS_API_URL", "http://127.0.0.1:1/unreachable")

	out, err := run(t, "send", "--group", "--data-dir", t.TempDir(), "a@b.com#pw123#5000")
	require.NoError(t, err)
	assert.Contains(t, out, "私聊")
}

func TestSendNotARequest(t *testing.T) {
	_, err := run(t, "send", "--data-dir", t.TempDir(), "hello")
	assert.Error(t, err)
}
