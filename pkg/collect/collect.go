package collect

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/maruel/natural"
)

// ErrNotStruct reports a ToMap argument that is not a struct or a pointer
// to one.
var ErrNotStruct = errors.New("collect: not a struct")

// Merge combines maps left to right; on key collision the rightmost value
// wins. The inputs are never modified.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	merged := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

func CopyMap[K comparable, V any](m map[K]V) map[K]V {
	mapCopy := make(map[K]V, len(m))

	for k, v := range m {
		mapCopy[k] = v
	}

	return mapCopy
}

func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

// SortedStringKeys returns the keys of m in natural order, so "run2" sorts
// before "run10".
func SortedStringKeys[V any](m map[string]V) []string {
	keys := Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return natural.Less(keys[i], keys[j])
	})
	return keys
}

// ToMap converts the exported fields of a struct (or pointer to struct) to
// a map keyed by field name. Unexported fields are skipped.
func ToMap(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil pointer", ErrNotStruct)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, rv.Kind())
	}

	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		out[f.Name] = rv.Field(i).Interface()
	}
	return out, nil
}
