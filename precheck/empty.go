package precheck

import (
	"reflect"

	"github.com/bingooh/b-go-precheck/_reflect"
)

// Sizer 集合类型，如set
type Sizer interface {
	Size() int
}

// Lener 字符序列类型，如*strings.Builder,*bytes.Buffer
type Lener interface {
	Len() int
}

// IsNilOrEmpty 是否为nil或空值，按以下顺序判断：
//  1. nil：true
//  2. array/slice：长度为0
//  3. string：长度为0
//  4. Sizer/chan：元素个数为0
//  5. map：元素个数为0
//  6. Lener：长度为0
//  7. 非nil指针：判断指针指向的值，多级指针最多解引用maxDerefDepth次
//
// 其他类型不支持空值检查，如数值/bool/struct，将抛出*Error：parameter must be type Object
func IsNilOrEmpty(v interface{}) bool {
	empty, ok := isEmpty(v, 0)
	if !ok {
		panic(&Error{msg: MsgUncheckable})
	}

	return empty
}

// CanCheckEmpty v的类型是否支持空值检查，nil返回true
func CanCheckEmpty(v interface{}) bool {
	_, ok := isEmpty(v, 0)
	return ok
}

// 自引用指针类型如type P *P将无限解引用，超过此值视为不支持空值检查
const maxDerefDepth = 32

func isEmpty(v interface{}, depth int) (empty, ok bool) {
	if _reflect.IsNil(v) {
		return true, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice, reflect.String:
		return rv.Len() == 0, true
	}

	if s, ok := v.(Sizer); ok {
		return s.Size() == 0, true
	}

	if k := rv.Kind(); k == reflect.Chan || k == reflect.Map {
		return rv.Len() == 0, true
	}

	if l, ok := v.(Lener); ok {
		return l.Len() == 0, true
	}

	if elem, ok := _reflect.Elem(v); ok && depth < maxDerefDepth {
		return isEmpty(elem, depth+1)
	}

	return false, false
}
