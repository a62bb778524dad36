package steps

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Bounds for a step count; must match the tags on Request.Steps.
const (
	MinSteps = 0
	MaxSteps = 100000
)

var validate = validator.New()

// Validate checks a parsed Request. It has no side effects.
func Validate(req Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	for _, ve := range valErrs {
		if ve.Field() == "Steps" {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrStepsOutOfRange, req.Steps, MinSteps, MaxSteps)
		}
	}
	return fmt.Errorf("%w: %s is %s", ErrParse, valErrs[0].Field(), valErrs[0].Tag())
}
