package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/healthtracker/internal/metrics"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// HH:MM wall-clock time
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := metrics.ParseClock(fl.Field().String())
		return err == nil
	})
	// Label present in the MET table
	_ = v.RegisterValidation("met_activity", func(fl validator.FieldLevel) bool {
		_, err := metrics.LookupMET(fl.Field().String())
		return err == nil
	})
	return v
}

// IsInvalidInput reports whether err was caused by the caller's data rather
// than by storage.
func IsInvalidInput(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs) ||
		errors.Is(err, metrics.ErrUnknownActivity) ||
		errors.Is(err, metrics.ErrInvalidDuration) ||
		errors.Is(err, metrics.ErrInvalidWeight) ||
		errors.Is(err, metrics.ErrInvalidClock)
}
