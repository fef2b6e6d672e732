package modelcheck

import "reflect"

// Presence validates that the field's value is set: neither a missing key
// nor nil (typed nil pointers, maps, and slices count as unset).
func Presence(m Model, field string, value any, opts Options) (string, error) {
	if isNilValue(value) {
		return resolveMessage(m, field, value, "presence", "is required", opts), nil
	}
	return "", nil
}

// Absence is the exact complement of Presence: the value must be unset.
func Absence(m Model, field string, value any, opts Options) (string, error) {
	if !isNilValue(value) {
		return resolveMessage(m, field, value, "absence", "must be blank", opts), nil
	}
	return "", nil
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
