// FILE: lixenwraith/settings/type.go
package settings

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// String returns the value at path as a string.
// Scalars are formatted; sequences are joined with commas.
func (s *Settings) String(path string) (string, error) {
	val, found := s.Value(path)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case map[string]any:
		return "", fmt.Errorf("cannot convert map to string for path %s", path)
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case error:
		return v.Error(), nil
	}
	return stringify(val), nil
}

// Int64 returns the value at path as an int64.
// Floats are truncated; strings are parsed with base prefixes allowed.
func (s *Settings) Int64(path string) (int64, error) {
	val, found := s.Value(path)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for path %s: overflow", u, path)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("cannot convert %v to int64 for path %s", f, path)
		}
		return int64(f), nil
	case reflect.String:
		str := strings.TrimSpace(v.String())
		if i, err := strconv.ParseInt(str, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(str, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for path %s", str, path)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for path %s", val, path)
}

// Float64 returns the value at path as a float64.
func (s *Settings) Float64(path string) (float64, error) {
	val, found := s.Value(path)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		str := strings.TrimSpace(v.String())
		switch n := toNumber(str).(type) {
		case int64:
			return float64(n), nil
		case float64:
			if !math.IsNaN(n) {
				return n, nil
			}
		}
		return 0, fmt.Errorf("cannot convert string %q to float64 for path %s", str, path)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to float64 for path %s", val, path)
}

// Bool returns the value at path as a bool. Strings use the boolean param
// coercion (true, 1, y...); numbers are true when non-zero.
func (s *Settings) Bool(path string) (bool, error) {
	val, found := s.Value(path)
	if !found {
		return false, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return toBoolean(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for path %s", val, path)
}
