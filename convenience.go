// FILE: lixenwraith/settings/convenience.go
package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Quick creates settings for the named application, registers every leaf of
// defaults as a param default and loads the standard sources.
func Quick(name string, defaults map[string]any) (*Settings, error) {
	opts := DefaultOptions()
	opts.Name = name
	return QuickCustom(opts, defaults)
}

// QuickCustom is Quick with explicit options, e.g. to supply Args or Environ.
// Leaves of defaults override defaults already present in opts.Params.
func QuickCustom(opts Options, defaults map[string]any) (*Settings, error) {
	params := make(map[string]Param, len(opts.Params))
	for name, p := range opts.Params {
		params[name] = p
	}
	for path, value := range flattenMap(defaults, "") {
		params[path] = params[path].merge(Param{Default: value})
	}
	opts.Params = params

	s := NewWithOptions(nil, opts)
	if err := s.ensureInit(); err != nil {
		return s, err
	}
	return s, nil
}

// MustQuick is like Quick but panics on error
func MustQuick(name string, defaults map[string]any) *Settings {
	s, err := Quick(name, defaults)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s
}

var debugDumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Debug returns a readable dump of the params and resolved values.
// It does not trigger loading.
func (s *Settings) Debug() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("Settings Debug Info:\n")
	fmt.Fprintf(&b, "Name: %q Version: %q\n", s.opts.Name, s.opts.Version)
	fmt.Fprintf(&b, "Project path: %s\n", s.opts.ProjectPath)
	fmt.Fprintf(&b, "Initialized: %t\n", s.initialized)

	b.WriteString("Params:\n")
	for _, name := range sortedKeys(s.params) {
		p := s.params[name]
		fmt.Fprintf(&b, "  %s: alias=%q type=%q default=%v\n", name, p.Alias, p.Type, p.Default)
	}

	b.WriteString("Values:\n")
	flat := flattenMap(s.data, "")
	for _, path := range sortedKeys(flat) {
		fmt.Fprintf(&b, "  %s = %s", path, debugDumper.Sdump(flat[path]))
	}

	return b.String()
}

// Clone creates an independent copy with the same values, params and state.
func (s *Settings) Clone() *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	params := make(map[string]Param, len(s.params))
	for name, p := range s.params {
		p.Default = DeepCopy(p.Default)
		params[name] = p
	}

	opts := s.opts
	opts.Args = slices.Clone(s.opts.Args)

	return &Settings{
		data:        DeepCopy(s.data).(map[string]any),
		opts:        opts,
		params:      params,
		initialized: s.initialized,
		helpText:    s.helpText,
		logger:      s.logger,
		console:     s.console,
	}
}
