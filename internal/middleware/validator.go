package middleware

import (
	"reflect"

	"ecotrack_backend/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags to gin's validator:
//
//	ecotask: the value is the id of a daily catalog task
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("ecotask", validateEcoTask)
}

func validateEcoTask(fl validator.FieldLevel) bool {
	var id int
	switch f := fl.Field(); f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		id = int(f.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		id = int(f.Uint())
	default:
		return false
	}
	_, ok := service.FindDailyTask(id)
	return ok
}
