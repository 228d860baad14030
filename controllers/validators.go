package controllers

import (
	"errors"

	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the enum validations used in request bodies to
// gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("orderstatus", validateOrderStatus); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmethod", validatePaymentMethod)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(models.OrderStatus)
	return ok && status.Valid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	method, ok := fl.Field().Interface().(models.PaymentMethod)
	return ok && method.Valid()
}
