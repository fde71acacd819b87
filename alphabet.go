package base79

// Base is the radix of a Number.
const Base = 79

// Alphabet bounds. Digit d is encoded as the byte MinChar+d.
const (
	MinChar byte = '+'
	MaxChar byte = MinChar + Base - 1 // 'y'
)

// midDigit is floor(Base/2): 39 + 1 + 39 = 79.
const midDigit uint8 = Base / 2

// alphabet maps digit values to characters. It is strictly increasing so
// comparing encoded text byte by byte orders numbers correctly.
var alphabet = func() (a [Base]byte) {
	for i := range a {
		a[i] = MinChar + byte(i)
	}

	return a
}()

// charOf returns the character for digit d. d must be in [0, 78].
func charOf(d uint8) byte {
	if d >= Base {
		panic("base79: digit out of range")
	}

	return alphabet[d]
}

// digitOf returns the digit value for character c.
func digitOf(c byte) (d uint8, ok bool) {
	if c < MinChar || c > MaxChar {
		return 0, false
	}

	return c - MinChar, true
}
