// FILE: lixenwraith/settings/decode_test.go
package settings

import (
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverSettings struct {
	Host     string        `settings:"host"`
	Port     int           `settings:"port"`
	Timeout  time.Duration `settings:"timeout"`
	Bind     net.IP        `settings:"bind"`
	Upstream *url.URL      `settings:"upstream"`
	Tags     []string      `settings:"tags"`
	Debug    bool
}

func TestScan(t *testing.T) {
	t.Run("Section", func(t *testing.T) {
		s, _ := newTestSettings(t, nil, func(o *Options) {
			o.Args = []string{
				"--server.host", "example.com",
				"--server.port", "8443",
				"--server.timeout", "1m30s",
				"--server.bind", "127.0.0.1",
				"--server.upstream", "https://backend.local:9000/api",
				"--server.tags", "a,b,c",
				"--server.debug",
			}
		})

		var cfg serverSettings
		require.NoError(t, s.Scan("server", &cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 8443, cfg.Port)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.Equal(t, "127.0.0.1", cfg.Bind.String())
		require.NotNil(t, cfg.Upstream)
		assert.Equal(t, "backend.local:9000", cfg.Upstream.Host)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
		assert.True(t, cfg.Debug)
	})

	t.Run("WholeMapping", func(t *testing.T) {
		s, _ := newTestSettings(t, map[string]any{
			"name":  "svc",
			"level": int64(3),
		})

		var cfg struct {
			Name  string `settings:"name"`
			Level int64  `settings:"level"`
		}
		require.NoError(t, s.Scan("", &cfg))
		assert.Equal(t, "svc", cfg.Name)
		assert.Equal(t, int64(3), cfg.Level)
	})

	t.Run("MissingSectionLeavesZero", func(t *testing.T) {
		s, _ := newTestSettings(t, nil)

		cfg := serverSettings{Host: "kept"}
		require.NoError(t, s.Scan("absent", &cfg))
		assert.Equal(t, "kept", cfg.Host)
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		s, _ := newTestSettings(t, nil)

		var cfg serverSettings
		assert.Error(t, s.Scan("", cfg))
		assert.Error(t, s.Scan("", (*serverSettings)(nil)))
	})

	t.Run("InvalidIP", func(t *testing.T) {
		s, _ := newTestSettings(t, map[string]any{
			"server": map[string]any{"bind": "not-an-ip"},
		})

		var cfg serverSettings
		assert.Error(t, s.Scan("server", &cfg))
	})

	t.Run("LoadErrorReturned", func(t *testing.T) {
		s, _ := newTestSettings(t, nil, func(o *Options) {
			o.Params = map[string]Param{"when": {Type: "date"}}
		})

		var cfg serverSettings
		err := s.Scan("", &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownParamType)
	})
}
