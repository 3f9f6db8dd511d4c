package precheck_test

import (
	"bytes"
	"container/list"
	"strings"
	"testing"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/stretchr/testify/require"
)

type stringSet map[string]struct{}

// Size 优先于map判断
func (s stringSet) Size() int {
	return len(s) - 1
}

type name string

func TestIsNilOrEmpty(t *testing.T) {
	r := require.New(t)

	r.True(precheck.IsNilOrEmpty(nil))
	r.True(precheck.IsNilOrEmpty((*string)(nil)))

	//array/slice
	r.True(precheck.IsNilOrEmpty([0]int{}))
	r.False(precheck.IsNilOrEmpty([1]interface{}{}))
	r.True(precheck.IsNilOrEmpty([]interface{}{}))
	r.False(precheck.IsNilOrEmpty(make([]interface{}, 1)))

	//string
	r.True(precheck.IsNilOrEmpty(``))
	r.False(precheck.IsNilOrEmpty(`I'm not empty.`))
	r.False(precheck.IsNilOrEmpty(` `)) //空白字符串不为空
	r.True(precheck.IsNilOrEmpty(name(``)))

	//Sizer/chan
	r.True(precheck.IsNilOrEmpty(stringSet{`a`: {}}))
	r.False(precheck.IsNilOrEmpty(stringSet{`a`: {}, `b`: {}}))
	ch := make(chan int, 1)
	r.True(precheck.IsNilOrEmpty(ch))
	ch <- 1
	r.False(precheck.IsNilOrEmpty(ch))

	//map
	r.True(precheck.IsNilOrEmpty(map[string]string{}))
	r.False(precheck.IsNilOrEmpty(map[string]string{`key`: `value`}))

	//Lener
	sb := &strings.Builder{}
	r.True(precheck.IsNilOrEmpty(sb))
	sb.WriteString(`I'm not empty.`)
	r.False(precheck.IsNilOrEmpty(sb))
	r.True(precheck.IsNilOrEmpty(&bytes.Buffer{}))
	l := list.New()
	r.True(precheck.IsNilOrEmpty(l))
	l.PushBack(1)
	r.False(precheck.IsNilOrEmpty(l))

	//指针
	s := ``
	r.True(precheck.IsNilOrEmpty(&s))
	items := []int{1}
	r.False(precheck.IsNilOrEmpty(&items))

	//不支持空值检查的类型
	for _, v := range []interface{}{1, 1.5, true, struct{}{}, new(int)} {
		r.PanicsWithError(`parameter must be type Object`, func() { precheck.IsNilOrEmpty(v) })
		r.False(precheck.CanCheckEmpty(v))
	}

	r.True(precheck.CanCheckEmpty(nil))
	r.True(precheck.CanCheckEmpty(``))
}

type selfPtr *selfPtr

func TestIsNilOrEmptyPtrChain(t *testing.T) {
	r := require.New(t)

	//多级指针
	s := ``
	ps := &s
	r.True(precheck.IsNilOrEmpty(&ps))

	v := `v`
	pv := &v
	r.False(precheck.IsNilOrEmpty(&pv))

	//自引用指针无法解引用到具体值，视为不支持空值检查
	var p selfPtr
	p = &p
	r.False(precheck.CanCheckEmpty(p))
	r.PanicsWithError(`parameter must be type Object`, func() { precheck.IsNilOrEmpty(p) })
	r.Error(precheck.CheckNotNilOrEmpty(p))
}

func TestIsNil(t *testing.T) {
	r := require.New(t)

	var fn func()
	var err error
	r.True(precheck.IsNil(nil))
	r.True(precheck.IsNil(fn))
	r.True(precheck.IsNil(err))
	r.True(precheck.IsNil((*int)(nil)))
	r.False(precheck.IsNil(0))
	r.False(precheck.IsNil([0]int{}))
	r.False(precheck.IsNil(``))
}
