package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

// FromIR decodes an IR node into the Go value pointed to by v.
// Object fields match struct fields case-insensitively.
func FromIR(node *ir.Node, v interface{}) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{
			Message: "target must be a non-nil pointer",
		}
	}
	return fromIRReflect(node, val.Elem(), "")
}

func fromIRReflect(node *ir.Node, val reflect.Value, fieldPath string) error {
	if !val.CanSet() {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   "target is not settable",
		}
	}

	kind := val.Kind()
	if kind == reflect.Ptr {
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRReflect(node, val.Elem(), fieldPath)
	}
	if kind == reflect.Interface && val.NumMethod() == 0 {
		val.Set(reflect.ValueOf(ToGo(node)))
		return nil
	}

	switch node.Type {
	case ir.StringType:
		if kind != reflect.String {
			return typeErr(fieldPath, "string", kind)
		}
		val.SetString(node.String)
		return nil

	case ir.BoolType:
		if kind != reflect.Bool {
			return typeErr(fieldPath, "bool", kind)
		}
		val.SetBool(node.Bool)
		return nil

	case ir.NumberType:
		return fromIRNumber(node, val, fieldPath)

	case ir.ArrayType:
		return fromIRArray(node, val, fieldPath)

	case ir.ObjectType:
		return fromIRObject(node, val, fieldPath)
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot decode %s node", node.Type),
	}
}

func fromIRNumber(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if node.Int64 != nil {
			val.SetInt(*node.Int64)
			return nil
		}
		val.SetInt(int64(*node.Float64))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if node.Int64 != nil {
			val.SetUint(uint64(*node.Int64))
			return nil
		}
		val.SetUint(uint64(*node.Float64))
		return nil
	case reflect.Float32, reflect.Float64:
		if node.Float64 != nil {
			val.SetFloat(*node.Float64)
			return nil
		}
		val.SetFloat(float64(*node.Int64))
		return nil
	default:
		return typeErr(fieldPath, "number", val.Kind())
	}
}

func fromIRArray(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.Kind() != reflect.Slice {
		return typeErr(fieldPath, "array", val.Kind())
	}
	res := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
	for i, elt := range node.Values {
		if err := fromIRReflect(elt, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromIRObject(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch val.Kind() {
	case reflect.Map:
		typ := val.Type()
		if typ.Key().Kind() != reflect.String {
			return typeErr(fieldPath, "object", val.Kind())
		}
		res := reflect.MakeMapWithSize(typ, len(node.Fields))
		for i := range node.Fields {
			key := node.Fields[i].String
			elem := reflect.New(typ.Elem()).Elem()
			nextPath := key
			if fieldPath != "" {
				nextPath = fieldPath + "." + key
			}
			if err := fromIRReflect(node.Values[i], elem, nextPath); err != nil {
				return err
			}
			res.SetMapIndex(reflect.ValueOf(key), elem)
		}
		val.Set(res)
		return nil

	case reflect.Struct:
		typ := val.Type()
		for i := range node.Fields {
			key := node.Fields[i].String
			fv, ok := structFieldByName(val, typ, key)
			if !ok {
				continue
			}
			nextPath := key
			if fieldPath != "" {
				nextPath = fieldPath + "." + key
			}
			if err := fromIRReflect(node.Values[i], fv, nextPath); err != nil {
				return err
			}
		}
		return nil

	default:
		return typeErr(fieldPath, "object", val.Kind())
	}
}

func structFieldByName(val reflect.Value, typ reflect.Type, key string) (reflect.Value, bool) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if strings.EqualFold(field.Name, key) {
			return val.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func typeErr(fieldPath, want string, got reflect.Kind) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot decode %s into %s", want, got),
	}
}

// ToGo strips IR wrapping and returns the plain nested Go value:
// objects as map[string]any, arrays as []any, scalars as string,
// bool, int64 or float64. Object key order is not observable in the
// result; callers needing order use the node directly.
func ToGo(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToGo(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToGo(elt)
		}
		return res
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Float64
	default:
		return node.String
	}
}
