package modelcheck

import (
	"fmt"
	"reflect"
)

// TypeOf validates that the value's runtime type tag equals Options.Type.
// An Options.Type outside the canonical tag set is a configuration error.
func TypeOf(m Model, field string, value any, opts Options) (string, error) {
	if !validTypeTag(opts.Type) {
		return "", fmt.Errorf("%w: type constraint on field %q: %q is not a canonical type tag", ErrMissingOption, field, opts.Type)
	}
	if typeTagOf(value) == opts.Type {
		return "", nil
	}
	return resolveMessage(m, field, value, "type", fmt.Sprintf("must be of type %s", opts.Type), opts), nil
}

// InstanceOf validates that the value's dynamic type is assignable to the
// type named by Options.Instance, which may be a reflect.Type or an exemplar
// value. Interface types match via implementation.
func InstanceOf(m Model, field string, value any, opts Options) (string, error) {
	target := instanceType(opts.Instance)
	if target == nil {
		return "", fmt.Errorf("%w: instance constraint on field %q requires Instance", ErrMissingOption, field)
	}

	if vt := reflect.TypeOf(value); vt != nil {
		if target.Kind() == reflect.Interface {
			if vt.Implements(target) {
				return "", nil
			}
		} else if vt.AssignableTo(target) {
			return "", nil
		}
	}

	return resolveMessage(m, field, value, "instance", fmt.Sprintf("must be an instance of %s", target.String()), opts), nil
}

func validTypeTag(tag TypeTag) bool {
	switch tag {
	case TypeBool, TypeNumber, TypeString, TypeFunc, TypeSlice, TypeMap, TypeStruct, TypeNil:
		return true
	}
	return false
}

// typeTagOf classifies a value into one of the canonical type tags. Non-nil
// pointers classify as what they point to; nil of any kind is TypeNil. Kinds
// outside the canonical set (channels, unsafe pointers) match no tag.
func typeTagOf(value any) TypeTag {
	if value == nil {
		return TypeNil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return TypeNil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Bool:
		return TypeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		if v.IsNil() {
			return TypeNil
		}
		return TypeFunc
	case reflect.Slice:
		if v.IsNil() {
			return TypeNil
		}
		return TypeSlice
	case reflect.Array:
		return TypeSlice
	case reflect.Map:
		if v.IsNil() {
			return TypeNil
		}
		return TypeMap
	case reflect.Struct:
		return TypeStruct
	}
	return ""
}

func instanceType(instance any) reflect.Type {
	if instance == nil {
		return nil
	}
	if t, ok := instance.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(instance)
}

func instanceTypeName(instance any) string {
	if t := instanceType(instance); t != nil {
		return t.String()
	}
	return "<nil>"
}
