package swedishid

// Option configures a Parse call.
type Option func(*options)

type options struct {
	validator CheckDigitValidator
}

// WithCheckDigitValidator replaces the default Luhn check. A nil validator
// is ignored.
func WithCheckDigitValidator(v CheckDigitValidator) Option {
	return func(o *options) {
		if v != nil {
			o.validator = v
		}
	}
}

func newOptions(opts []Option) options {
	o := options{validator: Luhn{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// shapeFunc turns normalized digits into the canonical stored number and
// reports whether that number has the shape required by one kind.
type shapeFunc func(digits string) (canonical string, ok bool)

// parseCanonical runs the pipeline shared by every kind:
// empty check, normalize, shape, check digit. It returns the canonical
// number to store.
func parseCanonical(raw string, kind Kind, shape shapeFunc, opts []Option) (string, error) {
	if raw == "" {
		return "", parseError(kind, ErrEmptyInput)
	}
	o := newOptions(opts)

	digits, err := Normalize(raw)
	if err != nil {
		return "", parseError(kind, err)
	}

	number, ok := shape(digits)
	if !ok {
		return "", parseError(kind, ErrFormat)
	}

	valid, err := o.validator.Validate(number)
	if err != nil {
		return "", parseError(kind, err)
	}
	if !valid {
		return "", parseError(kind, ErrCheckDigit)
	}
	return number, nil
}

const canonicalLength = 10

// formatted inserts the conventional hyphen before the last four digits.
func formatted(number string) string {
	if len(number) != canonicalLength {
		return number
	}
	return number[:6] + "-" + number[6:]
}

// masked keeps only the leading six digits, for logs.
func masked(number string) string {
	if len(number) != canonicalLength {
		return "****"
	}
	return number[:6] + "-****"
}
