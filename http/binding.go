package http

import (
	"errors"

	"github.com/bingooh/b-go-precheck/rule"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingValidations 注册校验标签到gin的validator，如：`binding:"notnilorempty"`
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New(`gin binding validator is not *validator.Validate`)
	}

	return rule.RegisterValidations(v)
}

func MustRegisterBindingValidations() {
	if err := RegisterBindingValidations(); err != nil {
		panic(err)
	}
}
