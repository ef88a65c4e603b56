package utils

import (
	"sync"

	"github.com/alerta-golpe/api-go/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("scamcategory", validScamCategory)
	})
}

func validScamCategory(fl validator.FieldLevel) bool {
	return models.ScamCategory(fl.Field().String()).Valid()
}
