package _reflect

import (
	"reflect"
)

// IsNil 是否为nil，包括nil指针/map/slice/chan/func/interface
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return reflect.ValueOf(v).IsNil()
	}

	return false
}

// Elem 获取非nil指针指向的值
func Elem(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, false
	}

	return rv.Elem().Interface(), true
}
