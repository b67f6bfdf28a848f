package gomap

import (
	"fmt"
	"reflect"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

// ToIR converts a Go value to an IR node. It handles *ir.Node
// pass-through, primitives, maps with string keys, slices, arrays and
// structs. Map keys are emitted in sorted order; struct fields in
// declaration order.
func ToIR(v interface{}) (*ir.Node, error) {
	if node, ok := v.(*ir.Node); ok {
		return node, nil
	}
	return toIRReflectValue(reflect.ValueOf(v), "")
}

func toIRReflectValue(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   "cannot convert nil value",
		}
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   "cannot convert nil pointer",
			}
		}
		return toIRReflectValue(val.Elem(), fieldPath)
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRReflectSlice(val, fieldPath)

	case reflect.Map:
		return toIRReflectMap(val, fieldPath)

	case reflect.Struct:
		return toIRReflectStruct(val, fieldPath)

	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   "cannot convert nil interface",
			}
		}
		return toIRReflectValue(val.Elem(), fieldPath)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func toIRReflectSlice(val reflect.Value, fieldPath string) (*ir.Node, error) {
	length := val.Len()
	elements := make([]*ir.Node, 0, length)

	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := toIRReflectValue(val.Index(i), elemPath)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

func toIRReflectMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.NewObject(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		valueNode, err := toIRReflectValue(iter.Value(), valuePath)
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	return ir.FromMap(irMap), nil
}

// toIRReflectStruct converts a struct to an object node, fields in
// declaration order. Embedded structs are flattened into the parent.
func toIRReflectStruct(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	res := ir.NewObject()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous && fieldVal.Kind() == reflect.Struct {
			embedded, err := toIRReflectValue(fieldVal, fieldPath)
			if err != nil {
				return nil, err
			}
			for j := range embedded.Fields {
				name := embedded.Fields[j].String
				if ir.Get(res, name) != nil {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("field name conflict: embedded struct field %q conflicts with existing field", name),
					}
				}
				res.Set(name, embedded.Values[j])
			}
			continue
		}

		nextPath := field.Name
		if fieldPath != "" {
			nextPath = fieldPath + "." + field.Name
		}
		fieldNode, err := toIRReflectValue(fieldVal, nextPath)
		if err != nil {
			return nil, err
		}
		res.Set(field.Name, fieldNode)
	}
	return res, nil
}
