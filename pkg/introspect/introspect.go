package introspect

import (
	"reflect"
	"sort"
)

// TypeName returns the dereferenced runtime type of v as a string, or "nil"
// for a nil interface.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

// FieldCount returns the number of fields of v's dereferenced struct type,
// or 0 when v is not a struct.
func FieldCount(v any) int {
	if v == nil {
		return 0
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return 0
	}
	return t.NumField()
}

// Methods returns the exported method names of v's runtime type, sorted.
// Pointer receivers are included when v is a pointer.
func Methods(v any) []string {
	if v == nil {
		return []string{}
	}

	t := reflect.TypeOf(v)
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	sort.Strings(names)
	return names
}

// IsNil reports whether v is nil, including typed nils behind an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
