package base79

import "strings"

// Number is a base 79 fraction in [0, 1). The zero value is zero.
//
// A Number is immutable; every operation returns a new Number.
type Number struct {
	// digits are most significant first without trailing zeros.
	digits []uint8
}

// Zero returns the number zero, the implicit lower bound.
func Zero() Number {
	return Number{}
}

// Mid returns the single digit number in the middle of the unit interval. It
// is the conventional first key of an empty sequence.
func Mid() Number {
	return Number{digits: []uint8{midDigit}}
}

// FromDigits returns the number with the given digits, most significant
// first. Trailing zero digits are dropped. It panics if a digit is not less
// than Base.
func FromDigits(ds ...uint8) Number {
	for _, d := range ds {
		if d >= Base {
			panic("base79: digit out of range")
		}
	}

	return Number{digits: trim(append([]uint8(nil), ds...))}
}

// Parse decodes text into a number. The empty string is zero.
func Parse(text string) (n Number, err error) {
	defer Error.WrapP(&err)

	if text == "" {
		return Number{}, nil
	}

	ds := make([]uint8, len(text))
	for i := 0; i < len(text); i++ {
		d, ok := digitOf(text[i])
		if !ok {
			return Number{}, &InvalidDigitError{
				Char: text[i],
				Pos:  i,
			}
		}

		ds[i] = d
	}

	if ds[len(ds)-1] == 0 {
		return Number{}, &NonCanonicalError{
			Text: text,
		}
	}

	return Number{digits: ds}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return n
}

// String renders the number. Zero renders as the empty string.
func (n Number) String() string {
	var sb strings.Builder
	sb.Grow(len(n.digits))

	for _, d := range n.digits {
		sb.WriteByte(charOf(d))
	}

	return sb.String()
}

// Digits returns a copy of the digits, most significant first.
func (n Number) Digits() []uint8 {
	return append([]uint8{}, n.digits...)
}

// Len returns the number of digits.
func (n Number) Len() int {
	return len(n.digits)
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return len(n.digits) == 0
}

// Compare returns -1, 0 or +1 when n is less than, equal to or greater than m.
func (n Number) Compare(m Number) int {
	size := len(n.digits)
	if len(m.digits) > size {
		size = len(m.digits)
	}

	for i := 0; i < size; i++ {
		a, b := digitAt(n.digits, i), digitAt(m.digits, i)

		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		}
	}

	return 0
}

// Equal reports whether n and m are the same number.
func (n Number) Equal(m Number) bool {
	if len(n.digits) != len(m.digits) {
		return false
	}

	for i := range n.digits {
		if n.digits[i] != m.digits[i] {
			return false
		}
	}

	return true
}

// Less reports whether n sorts before m.
func (n Number) Less(m Number) bool {
	return n.Compare(m) < 0
}
