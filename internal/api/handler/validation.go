package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/campus-social/internal/model"
)

var registerOnce sync.Once

// RegisterValidators 给 gin 的 binding 引擎注册 campus_email 标签
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("campus_email", func(fl validator.FieldLevel) bool {
			return model.CurrentEmailPolicy().ValidateClaim(fl.Field().String()) == nil
		})
	})
	return err
}
