// FILE: lixenwraith/settings/registry.go
package settings

import (
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"runtime"
	"sync"
)

// Registry hands out one shared Settings per project, keyed by the name in
// the project manifest. Libraries resolving their settings through the same
// registry each get their own instance.
type Registry struct {
	mu        sync.Mutex
	instances map[string]*Settings
	logger    *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[string]*Settings),
		logger:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}

// WithLogger sets the logger handed to new instances.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Instance returns the settings of the project containing callerPath.
// The manifest found upward from callerPath supplies name, version and the
// project path. Without a path or a named manifest a fresh, unshared
// instance is returned.
func (r *Registry) Instance(callerPath string) *Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	opts := DefaultOptions()
	opts.Logger = r.logger
	if callerPath == "" {
		return NewWithOptions(nil, opts)
	}

	manifest := ReadProjectFile(DefaultManifest, callerPath)
	name, _ := manifest["name"].(string)
	if name == "" {
		r.logger.Debug("no named manifest, using unshared settings", "caller", callerPath)
		return NewWithOptions(nil, opts)
	}

	if s, ok := r.instances[name]; ok {
		return s
	}

	opts.Name = name
	if version, ok := manifest["version"]; ok && version != nil {
		opts.Version = stringify(version)
	}
	if path, ok := manifest[FilenameKey].(string); ok {
		opts.ProjectPath = filepath.Dir(path)
	}

	s := NewWithOptions(nil, opts)
	r.instances[name] = s
	r.logger.Debug("registered settings", "name", name, "version", opts.Version, "project", opts.ProjectPath)
	return s
}

// ForCaller returns the settings of the project containing the calling
// source file.
func (r *Registry) ForCaller() *Settings {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return r.Instance("")
	}
	return r.Instance(file)
}

// Len returns the number of shared instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}
