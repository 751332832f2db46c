// FILE: lixenwraith/settings/args.go
package settings

import "strings"

// PositionalKey holds the ordered positional arguments in a settings mapping.
const PositionalKey = "_"

// Args is the tokenized form of a command line.
// Flag values are bool, string or []string.
type Args struct {
	Positional []string
	Flags      map[string]any
}

// ParseArgs tokenizes a command line.
//
// Supported forms: -x, --long, clustered short flags (-xyz, the last one may
// take a value), --key=value and -k=value, bare tokens. A flag followed by a
// bare token takes it as value; repeating the flag accumulates values into a
// []string. Flags named in booleans never take a value.
func ParseArgs(args []string, booleans map[string]bool) *Args {
	result := &Args{
		Positional: []string{},
		Flags:      make(map[string]any),
	}

	// Flag that the next bare token attaches to; "" when none.
	pending := ""

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			if pending == "" {
				result.Positional = append(result.Positional, strings.TrimSpace(arg))
				continue
			}
			result.attach(pending, strings.TrimSpace(arg))
			pending = ""
			continue
		}

		key := strings.TrimLeft(arg, "-")
		pending = ""

		// -abc
		if len(arg) > 2 && arg[1] != '-' && arg[2] != '=' {
			runes := []rune(key)
			for _, r := range runes {
				result.setTrue(string(r))
			}
			pending = string(runes[len(runes)-1])
			continue
		}

		if key == "" {
			continue
		}

		// --key=value
		if idx := strings.Index(key, "="); idx > 0 {
			name := strings.TrimSpace(key[:idx])
			result.Flags[name] = strings.TrimSpace(key[idx+1:])
			continue
		}

		if booleans[key] {
			result.Flags[key] = true
			continue
		}

		result.setTrue(key)
		pending = key
	}

	return result
}

// setTrue marks a flag as present without overwriting an existing value.
func (a *Args) setTrue(key string) {
	if _, exists := a.Flags[key]; !exists {
		a.Flags[key] = true
	}
}

func (a *Args) attach(key, value string) {
	switch current := a.Flags[key].(type) {
	case nil, bool:
		a.Flags[key] = value
	case string:
		a.Flags[key] = []string{current, value}
	case []string:
		a.Flags[key] = append(current, value)
	}
}

// Map returns the flags and positional arguments as one settings mapping.
// Sequences are converted to []any so they flow through the transform passes.
func (a *Args) Map() map[string]any {
	m := make(map[string]any, len(a.Flags)+1)
	for key, value := range a.Flags {
		if list, ok := value.([]string); ok {
			m[key] = toAnySlice(list)
			continue
		}
		m[key] = value
	}
	m[PositionalKey] = toAnySlice(a.Positional)
	return m
}

// SplitCommandLine splits a single command-line string on whitespace.
func SplitCommandLine(line string) []string {
	return strings.Fields(line)
}

func toAnySlice(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}
