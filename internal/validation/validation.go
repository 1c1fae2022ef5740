// Package validation registers custom go-playground validator tags on gin's binding engine.
package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/imtaco/showroom-live/internal/errors"
)

func MustRegisterGin(tag string, fn validator.Func) {
	if err := RegisterGin(tag, fn); err != nil {
		panic(err)
	}
}

func MustRegisterGinAlias(tag string, alias string) {
	if err := RegisterGinAlias(tag, alias); err != nil {
		panic(err)
	}
}

func Register(v *validator.Validate, tag string, fn validator.Func) error {
	return v.RegisterValidation(tag, fn)
}

func RegisterAlias(v *validator.Validate, tag string, alias string) {
	v.RegisterAlias(tag, alias)
}

func RegisterGin(tag string, fn validator.Func) error {
	v, err := ginEngine()
	if err != nil {
		return err
	}
	return Register(v, tag, fn)
}

func RegisterGinAlias(tag string, alias string) error {
	v, err := ginEngine()
	if err != nil {
		return err
	}
	RegisterAlias(v, tag, alias)
	return nil
}

func ginEngine() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.PureNew("gin validator engine is not *validator.Validate")
	}
	return v, nil
}
