package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// tagValidate is shared by all tag validators; it caches parsed tags and is
// safe for concurrent use.
var tagValidate = validator.New(validator.WithRequiredStructEnabled())

// Tag returns a validator driven by go-playground/validator rules, for
// example "required,email" or "min=3,max=20". Unknown rules are rejected
// here rather than at validation time.
func Tag[T any](tag string) (Validator[T], error) {
	var zero T
	if _, err := checkTag(zero, tag); err != nil {
		return nil, errors.Wrapf(ErrInvalidTag, "%q: %v", tag, err)
	}

	return Func[T](func(content T) State {
		state, err := checkTag(content, tag)
		if err != nil {
			return StateUnknown
		}
		return state
	}), nil
}

// checkTag runs the rule against content. Rule errors (the validator panics
// on undefined rules) are returned as errors; a failed rule is StateInvalid.
func checkTag(content any, tag string) (state State, err error) {
	defer func() {
		if r := recover(); r != nil {
			state, err = StateUnknown, fmt.Errorf("%v", r)
		}
	}()

	verr := tagValidate.Var(content, tag)
	if verr == nil {
		return StateValid, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(verr, &invalid) {
		return StateUnknown, verr
	}
	return StateInvalid, nil
}
