// FILE: lixenwraith/settings/env.go
package settings

import (
	"os"
	"strings"
)

// Environ returns the process environment as a map.
// Entries without '=' are skipped.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			env[key] = value
		}
	}
	return env
}

// envPrefix converts an application name to its variable prefix: my-app
// becomes my_app.
func envPrefix(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func stringMapToAny(env map[string]string) map[string]any {
	out := make(map[string]any, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}
