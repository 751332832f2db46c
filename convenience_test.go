// FILE: lixenwraith/settings/convenience_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuick(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"quick-test-app": {"server": {"port": 9000}}}`)

	opts := DefaultOptions()
	opts.Name = "quick-test-app"
	opts.ProjectPath = dir
	opts.Args = []string{"--debug"}
	opts.Environ = func() map[string]string { return map[string]string{} }

	s, err := QuickCustom(opts, map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": int64(8080),
		},
		"debug": false,
	})
	require.NoError(t, err)

	assert.Equal(t, "quick-test-app", s.Name())
	assert.Equal(t, "localhost", s.Get("server.host", nil))
	assert.Equal(t, int64(9000), s.Get("server.port", nil))
	assert.Equal(t, true, s.Get("debug", nil))

	params := s.Params()
	assert.Equal(t, Param{Default: "localhost"}, params["server.host"])
	assert.Equal(t, Param{Default: false}, params["debug"])
}

func TestQuickCustomKeepsRegisteredParams(t *testing.T) {
	opts := DefaultOptions()
	opts.ProjectPath = t.TempDir()
	opts.Args = []string{"-l", "4"}
	opts.Environ = func() map[string]string { return map[string]string{} }
	opts.Params = map[string]Param{"level": {Alias: "l", Type: TypeNumber}}

	s, err := QuickCustom(opts, map[string]any{"level": int64(1)})
	require.NoError(t, err)

	assert.Equal(t, int64(4), s.Get("level", nil))
	assert.Equal(t, Param{Alias: "l", Type: TypeNumber, Default: int64(1)}, s.Params()["level"])
}

func TestMustQuick(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Reads the test binary's own arguments; only multi-letter keys are safe
	assert.NotPanics(t, func() {
		s := MustQuick("must-quick-test-app", map[string]any{"logLevel": int64(1)})
		assert.Equal(t, "must-quick-test-app", s.Name())
		assert.Equal(t, int64(1), s.Get("logLevel", nil))
	})
}

func TestDebug(t *testing.T) {
	s, _ := newTestSettings(t, map[string]any{"name": "svc"}, func(o *Options) {
		o.Name = "debug-test-app"
		o.Version = "0.3.0"
	})
	require.NoError(t, s.Param("name", Param{Alias: "n", Type: TypeString}))

	out := s.Debug()
	assert.Contains(t, out, "Settings Debug Info:")
	assert.Contains(t, out, `Name: "debug-test-app" Version: "0.3.0"`)
	assert.Contains(t, out, "Initialized: false")
	assert.Contains(t, out, `name: alias="n" type="string"`)
	assert.Contains(t, out, `name = (string) (len=3) "svc"`)

	// Dump does not load anything
	assert.Contains(t, s.Debug(), "Initialized: false")
}
