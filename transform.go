// FILE: lixenwraith/settings/transform.go
package settings

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
)

// TransformOptions toggles the key/value passes applied by Transform.
// Passes always run in field order; disabled passes are skipped.
type TransformOptions struct {
	KeyToLowerCase  bool
	KeyToCamelCase  bool
	KeyNegating     bool
	KeyNested       bool
	ValuePrimitives bool
}

// DefaultTransformOptions enables every pass
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		KeyToLowerCase:  true,
		KeyToCamelCase:  true,
		KeyNegating:     true,
		KeyNested:       true,
		ValuePrimitives: true,
	}
}

type transformPass struct {
	enabled func(TransformOptions) bool
	fn      MapFunc
}

var transformPasses = []transformPass{
	{func(o TransformOptions) bool { return o.KeyToLowerCase }, TransformKeyToLowerCase},
	{func(o TransformOptions) bool { return o.KeyToCamelCase }, TransformKeyToCamelCase},
	{func(o TransformOptions) bool { return o.KeyNegating }, TransformKeyNegating},
	{func(o TransformOptions) bool { return o.KeyNested }, TransformKeyNested},
	{func(o TransformOptions) bool { return o.ValuePrimitives }, TransformValuePrimitives},
}

// Transform runs the enabled passes over m, each as a full DeepMap.
func Transform(m map[string]any, opts TransformOptions) map[string]any {
	result := m
	if result == nil {
		result = make(map[string]any)
	}
	for _, pass := range transformPasses {
		if pass.enabled(opts) {
			result = DeepMap(result, pass.fn)
		}
	}
	return result
}

// TransformKeyToLowerCase lower-cases the key.
func TransformKeyToLowerCase(key string, value any) (string, any) {
	return strings.ToLower(key), value
}

// TransformKeyToCamelCase rewrites snake_case and kebab-case keys to camelCase.
// Single-character keys are left alone.
func TransformKeyToCamelCase(key string, value any) (string, any) {
	if utf8.RuneCountInString(key) <= 1 {
		return key, value
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c == '-' || c == '_') && i+1 < len(key) && isASCIILetter(key[i+1]) {
			b.WriteByte(upperASCII(key[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}

	camel := b.String()
	first, size := utf8.DecodeRuneInString(camel)
	return string(unicode.ToLower(first)) + camel[size:], value
}

// TransformKeyNegating turns noFlag into flag=false.
func TransformKeyNegating(key string, value any) (string, any) {
	if len(key) > 2 && strings.HasPrefix(key, "no") && key[2] >= 'A' && key[2] <= 'Z' {
		return string(key[2]+('a'-'A')) + key[3:], false
	}
	return key, value
}

// TransformKeyNested splits a dotted key at its first dot and nests the value
// under the remaining path, so sibling dotted keys fold together in DeepMap.
func TransformKeyNested(key string, value any) (string, any) {
	root, rest, found := strings.Cut(key, ".")
	if !found {
		return key, value
	}
	return root, SetNode(map[string]any{}, rest, value)
}

// TransformValuePrimitives infers booleans and numbers from string values.
func TransformValuePrimitives(key string, value any) (string, any) {
	s, ok := value.(string)
	if !ok || s == "" {
		return key, value
	}

	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "":
		return key, value
	case "true", "yes":
		return key, true
	case "false", "no":
		return key, false
	}

	if n, ok := parseNumber(normalized); ok {
		return key, n
	}
	return key, value
}

// CamelCaseToKebab converts fileName to file-name.
func CamelCaseToKebab(name string) string {
	var b strings.Builder
	for i, part := range camelcase.Split(name) {
		first, _ := utf8.DecodeRuneInString(part)
		if i > 0 && unicode.IsUpper(first) {
			b.WriteByte('-')
		}
		b.WriteString(strings.ToLower(part))
	}
	return b.String()
}

// ProcessParams resolves every described parameter in m: path lookup, then
// the flat alias key, then type coercion, then the default. Resolved values
// are written back at the dotted path, and consumed alias keys are removed
// unless they hold a map. m is modified and returned.
//
// A number-typed value that does not parse becomes NaN rather than an error.
func ProcessParams(m map[string]any, params map[string]Param) (map[string]any, error) {
	if m == nil {
		m = make(map[string]any)
	}

	for _, name := range sortedKeys(params) {
		p := params[name]
		if name == "" {
			continue
		}
		if !p.Type.valid() {
			return m, fmt.Errorf("%w %q of param %q", ErrUnknownParamType, p.Type, name)
		}

		value := GetNode(m, name, nil)
		if value == nil && p.Alias != "" {
			value = m[p.Alias]
		}
		if value != nil && p.Type != "" {
			value = coerce(value, p.Type)
		}
		if value == nil {
			value = p.Default
		}
		if value != nil {
			m = SetNode(m, name, value)
		}

		if p.Alias != "" && p.Alias != name {
			if _, isMap := m[p.Alias].(map[string]any); !isMap {
				delete(m, p.Alias)
			}
		}
	}

	return m, nil
}

func coerce(value any, t ParamType) any {
	switch t {
	case TypeString:
		return stringify(value)
	case TypeNumber:
		return toNumber(value)
	case TypeBoolean:
		return toBoolean(value)
	}
	return value
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			if elem != nil {
				parts[i] = stringify(elem)
			}
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func toNumber(v any) any {
	switch val := v.(type) {
	case int64, float64:
		return val
	case bool:
		if val {
			return int64(1)
		}
		return int64(0)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return int64(0)
		}
		if n, ok := parseNumber(s); ok {
			return n
		}
		return math.NaN()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32:
		return rv.Float()
	}
	return math.NaN()
}

func toBoolean(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if val == "1" {
			return true
		}
		lower := strings.ToLower(val)
		return lower == "true" || strings.HasPrefix(lower, "y")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 1
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 1
	}
	return false
}

// parseNumber accepts decimal, exponent and 0x/0o/0b integer literals.
// Integral text yields int64, everything else float64.
func parseNumber(s string) (any, bool) {
	lower := strings.ToLower(s)
	if len(lower) > 2 && lower[0] == '0' {
		base := 0
		switch lower[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			i, err := strconv.ParseInt(lower[2:], base, 64)
			return i, err == nil
		}
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	// ParseFloat would accept inf, infinity and nan
	if strings.ContainsAny(lower, "in") {
		return nil, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return nil, false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
