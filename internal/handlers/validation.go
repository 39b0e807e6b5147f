package handlers

import (
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("importfield", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseField(fl.Field().String())
		return ok
	})
}
