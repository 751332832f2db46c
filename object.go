// FILE: lixenwraith/settings/object.go
package settings

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// MapFunc rewrites a single key/value pair during DeepMap.
type MapFunc func(key string, value any) (string, any)

// DeepCopy returns a structurally independent copy of a map/slice/scalar tree.
// A map or slice reached a second time anywhere in the traversal is omitted
// from the copy, which drops cyclic edges. Funcs, channels and unsafe pointers
// cannot be represented and are omitted as well.
func DeepCopy(v any) any {
	out, _ := copyValue(v, make(map[uintptr]struct{}))
	return out
}

// copyValue reports false when the value must be left out of the copy.
func copyValue(v any, seen map[uintptr]struct{}) (any, bool) {
	if v == nil {
		return nil, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, false

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v, true
		}
		if rv.IsNil() {
			return map[string]any{}, true
		}
		ptr := rv.Pointer()
		if _, visited := seen[ptr]; visited {
			return nil, false
		}
		seen[ptr] = struct{}{}

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if elem, ok := copyValue(iter.Value().Interface(), seen); ok {
				out[iter.Key().String()] = elem
			}
		}
		return out, true

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), rv.Bytes()...), true
		}
		if rv.Len() > 0 {
			ptr := rv.Pointer()
			if _, visited := seen[ptr]; visited {
				return nil, false
			}
			seen[ptr] = struct{}{}
		}

		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if elem, ok := copyValue(rv.Index(i).Interface(), seen); ok {
				out = append(out, elem)
			}
		}
		return out, true
	}

	return v, true
}

// DeepMerge merges sources into target left to right and returns target.
// Maps merge recursively; any other non-nil value replaces the target value
// with a copy. Sequences are replaced, never concatenated.
func DeepMerge(target map[string]any, sources ...map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any)
	}
	for _, src := range sources {
		mergeInto(target, src, make(map[uintptr]struct{}))
	}
	return target
}

// mergeInto tracks the source maps on the current descent so a cyclic
// source cannot recurse forever; the cyclic edge is skipped.
func mergeInto(dst, src map[string]any, visiting map[uintptr]struct{}) {
	if src == nil {
		return
	}
	ptr := reflect.ValueOf(src).Pointer()
	if _, ok := visiting[ptr]; ok {
		return
	}
	visiting[ptr] = struct{}{}
	defer delete(visiting, ptr)

	for key, srcVal := range src {
		if srcMap, isMap := srcVal.(map[string]any); isMap {
			if _, cyclic := visiting[reflect.ValueOf(srcMap).Pointer()]; cyclic && srcMap != nil {
				continue
			}
			dstMap, ok := dst[key].(map[string]any)
			if !ok || dstMap == nil {
				dstMap = make(map[string]any)
				dst[key] = dstMap
			}
			mergeInto(dstMap, srcMap, visiting)
			continue
		}

		if srcVal == nil {
			continue
		}
		dst[key] = DeepCopy(srcVal)
	}
}

// DeepMap rebuilds m depth-first, children before parents, applying fn to
// every entry. Slices keep their shape; fn receives the element index as key.
// When two keys map to the same new key, map values deep-merge and anything
// else is overwritten by the later key in sorted key order.
func DeepMap(m map[string]any, fn MapFunc) map[string]any {
	result := make(map[string]any, len(m))

	for _, key := range sortedKeys(m) {
		newKey, newValue := fn(key, mapValue(m[key], fn))

		existing, existingIsMap := result[newKey].(map[string]any)
		incoming, incomingIsMap := newValue.(map[string]any)
		if existingIsMap && incomingIsMap {
			result[newKey] = DeepMerge(existing, incoming)
		} else {
			result[newKey] = newValue
		}
	}

	return result
}

func mapValue(v any, fn MapFunc) any {
	switch val := v.(type) {
	case map[string]any:
		return DeepMap(val, fn)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			_, out[i] = fn(strconv.Itoa(i), mapValue(elem, fn))
		}
		return out
	}
	return v
}

// GetNode returns the value at a dot-separated path, or def when the map is
// nil, the path is empty, a segment is missing, or the value is nil.
// Descent stops at the first non-map value, which is returned even when
// segments remain.
func GetNode(m map[string]any, path string, def any) any {
	if m == nil || path == "" {
		return def
	}

	var node any = m
	for _, segment := range strings.Split(path, ".") {
		current, ok := node.(map[string]any)
		if !ok {
			break
		}
		value, exists := current[segment]
		if !exists {
			return def
		}
		node = value
	}

	if node == nil {
		return def
	}
	return node
}

// SetNode sets value at a dot-separated path and returns the (possibly new) root.
// Intermediate maps are created, and non-map intermediates are replaced by maps.
func SetNode(m map[string]any, path string, value any) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	if path == "" {
		return m
	}

	segments := strings.Split(path, ".")
	current := m
	for _, segment := range segments[:len(segments)-1] {
		next, isMap := current[segment].(map[string]any)
		if !isMap || next == nil {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value

	return m
}

// FilterByKeyPrefix keeps keys starting with prefix (case-insensitive) and
// strips the prefix plus one following '_' or '-' from them.
func FilterByKeyPrefix(m map[string]any, prefix string) map[string]any {
	if prefix == "" {
		return m
	}

	result := make(map[string]any)
	for key, value := range m {
		if len(key) < len(prefix) || !strings.EqualFold(key[:len(prefix)], prefix) {
			continue
		}
		newKey := key[len(prefix):]
		if strings.HasPrefix(newKey, "_") || strings.HasPrefix(newKey, "-") {
			newKey = newKey[1:]
		}
		result[newKey] = value
	}
	return result
}

// FilterByKeys keeps only the listed keys, compared case-insensitively.
// A nil key list returns m unchanged.
func FilterByKeys(m map[string]any, keys []string) map[string]any {
	if keys == nil {
		return m
	}

	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[strings.ToLower(k)] = true
	}

	result := make(map[string]any)
	for key, value := range m {
		if allowed[strings.ToLower(key)] {
			result[key] = value
		}
	}
	return result
}

// flattenMap converts a nested map to a flat map with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if sub, isMap := value.(map[string]any); isMap && len(sub) > 0 {
			for subPath, subValue := range flattenMap(sub, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}

	return flat
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
