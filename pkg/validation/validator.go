package validation

import (
	"cmp"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// Validator maps field content to a State. Implementations must be total
// and side-effect free: the same content always yields the same state and
// Validate never panics.
type Validator[T any] interface {
	Validate(content T) State
}

// Func adapts a function to a Validator. A nil Func yields StateUnknown.
type Func[T any] func(content T) State

// Validate calls f.
func (f Func[T]) Validate(content T) State {
	if f == nil {
		return StateUnknown
	}
	return f(content)
}

// Predicate returns a validator that is StateValid when fn reports true and
// StateInvalid otherwise.
func Predicate[T any](fn func(T) bool) Validator[T] {
	return Func[T](func(content T) State {
		if fn == nil {
			return StateUnknown
		}
		return stateOf(fn(content))
	})
}

// Digits returns a validator accepting exactly n ASCII digits.
func Digits(n int) Validator[string] {
	return Func[string](func(content string) State {
		if utf8.RuneCountInString(content) != n {
			return StateInvalid
		}
		for _, r := range content {
			if r < '0' || r > '9' {
				return StateInvalid
			}
		}
		return StateValid
	})
}

// ZipCode returns a validator for five-digit US ZIP codes.
func ZipCode() Validator[string] {
	return Digits(5)
}

const phoneDigits = 10

// PhoneNumber returns a validator for ten-digit phone numbers. Digits may be
// separated by '-', '.', ' ', '(' or ')', so both "5551234567" and
// "(555) 123-4567" are valid.
func PhoneNumber() Validator[string] {
	return Func[string](func(content string) State {
		digits := 0
		for _, r := range content {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case r == '-', r == '.', r == ' ', r == '(', r == ')':
			default:
				return StateInvalid
			}
		}
		return stateOf(digits == phoneDigits)
	})
}

// Pattern returns a validator that requires the whole content to match expr.
func Pattern(expr string) (Validator[string], error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q: %v", expr, err)
	}
	return Func[string](func(content string) State {
		return stateOf(re.MatchString(content))
	}), nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) Validator[string] {
	v, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return v
}

// Range returns a validator accepting values in [lo, hi].
func Range[T cmp.Ordered](lo, hi T) Validator[T] {
	return Func[T](func(content T) State {
		return stateOf(cmp.Compare(content, lo) >= 0 && cmp.Compare(content, hi) <= 0)
	})
}

// Checked returns a validator that is StateValid only for true, for
// switches such as "accept terms".
func Checked() Validator[bool] {
	return Func[bool](func(content bool) State {
		return stateOf(content)
	})
}

// NotBefore returns a validator accepting times at or after earliest.
func NotBefore(earliest time.Time) Validator[time.Time] {
	return Func[time.Time](func(content time.Time) State {
		return stateOf(!content.Before(earliest))
	})
}

// All combines validators. The result is the first state that is not
// StateValid, or StateValid if every validator passes. With no validators,
// or with a nil validator in the list, the result is StateUnknown.
func All[T any](validators ...Validator[T]) Validator[T] {
	return Func[T](func(content T) State {
		if len(validators) == 0 {
			return StateUnknown
		}
		for _, v := range validators {
			if v == nil {
				return StateUnknown
			}
			if s := v.Validate(content); s != StateValid {
				return s
			}
		}
		return StateValid
	})
}

func stateOf(ok bool) State {
	if ok {
		return StateValid
	}
	return StateInvalid
}
