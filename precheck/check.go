package precheck

// CheckNotNil 同NotNil()，但返回错误而不是抛出错误
func CheckNotNil(v interface{}, args ...interface{}) error {
	return Try(func() {
		NotNil(v, args...)
	})
}

// CheckNotNilOrEmpty 同NotNilOrEmpty()，v的类型不支持空值检查也将返回错误
func CheckNotNilOrEmpty(v interface{}, args ...interface{}) error {
	return Try(func() {
		NotNilOrEmpty(v, args...)
	})
}

func CheckExpression(ok bool, args ...interface{}) error {
	return Try(func() {
		Expression(ok, args...)
	})
}
