// FILE: lixenwraith/settings/register.go
package settings

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ParamType names the coercion applied to a parameter value.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

func (t ParamType) valid() bool {
	switch t {
	case "", TypeString, TypeNumber, TypeBoolean:
		return true
	}
	return false
}

// Param describes a parameter addressed by a dotted name.
// Zero fields mean "not specified".
type Param struct {
	// Alias is a flat key that also supplies the value, usually a short flag
	Alias string
	// Type selects value coercion; empty leaves the value as loaded
	Type ParamType
	// Default is used when no source supplies a value
	Default any
}

// merge overlays the non-zero fields of other onto p.
func (p Param) merge(other Param) Param {
	if other.Alias != "" {
		p.Alias = other.Alias
	}
	if other.Type != "" {
		p.Type = other.Type
	}
	if other.Default != nil {
		p.Default = other.Default
	}
	return p
}

// Param registers or updates the descriptor for name. Fields already set are
// kept unless p specifies them.
func (s *Settings) Param(name string, p Param) error {
	if name == "" {
		return fmt.Errorf("param name cannot be empty")
	}
	if !p.Type.valid() {
		return fmt.Errorf("%w %q of param %q", ErrUnknownParamType, p.Type, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.params[name] = s.params[name].merge(p)
	return nil
}

// Boolean marks each name as a boolean parameter.
func (s *Settings) Boolean(names ...string) error {
	for _, name := range names {
		if err := s.Param(name, Param{Type: TypeBoolean}); err != nil {
			return err
		}
	}
	return nil
}

// Params returns a copy of the registered descriptors.
func (s *Settings) Params() map[string]Param {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Param, len(s.params))
	for name, p := range s.params {
		out[name] = p
	}
	return out
}

// booleanFlags lists every command-line spelling of the boolean params:
// fileName, file-name, noFileName, no-file-name and the alias.
// Caller must hold s.mu.
func (s *Settings) booleanFlags() map[string]bool {
	flags := make(map[string]bool)
	for name, p := range s.params {
		if p.Type != TypeBoolean {
			continue
		}
		kebab := CamelCaseToKebab(name)
		flags[name] = true
		flags[kebab] = true
		flags["no"+upperFirst(name)] = true
		flags["no-"+kebab] = true
		if p.Alias != "" {
			flags[p.Alias] = true
		}
	}
	return flags
}

// registerHelpParams adds params found in a usage block. Names are
// normalized like command-line keys; negated names (noColor) are registered
// under the positive name without a type.
// Caller must hold s.mu.
func (s *Settings) registerHelpParams(found map[string]Param) {
	for raw, p := range found {
		name, _ := TransformKeyToCamelCase(raw, nil)
		if positive, _ := TransformKeyNegating(name, nil); positive != name {
			s.params[positive] = s.params[positive].merge(Param{})
			continue
		}
		s.params[name] = s.params[name].merge(p)
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
