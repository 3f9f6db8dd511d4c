package util

import "fmt"

// OnExit 必须使用defer调用，崩溃值将转换为err传给fn，未崩溃则err为nil
func OnExit(fn func(err error)) {
	var err error = nil
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			err = e
		} else {
			err = fmt.Errorf("%v", r)
		}
	}

	fn(err)
}
