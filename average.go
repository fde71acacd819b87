package base79

func width(a, b Number) int {
	if len(a.digits) > len(b.digits) {
		return len(a.digits)
	}

	return len(b.digits)
}

// Average returns (a+b)/2 truncated to the length of the longer input.
//
// Average is commutative and Average(a, a) is a. When a and b are adjacent at
// their length the result equals one of them; use Between for a result that
// is strictly between.
func Average(a, b Number) Number {
	return Number{digits: mean(a.digits, b.digits, false, width(a, b))}
}

// AverageWithZero returns Average(a, Zero()).
func AverageWithZero(a Number) Number {
	return Average(a, Number{})
}

// AverageWithOne returns (a+1)/2 truncated to the length of a, or to one digit
// when a is zero so that AverageWithOne(Zero()) is Mid().
func AverageWithOne(a Number) Number {
	n := len(a.digits)
	if n == 0 {
		n = 1
	}

	return Number{digits: mean(a.digits, nil, true, n)}
}

// Between returns a number strictly between a and b, in either order. The
// result is at most one digit longer than the longer input.
func Between(a, b Number) (n Number, err error) {
	lo, hi := a, b
	switch lo.Compare(hi) {
	case 0:
		return Number{}, ErrEqualBounds
	case +1:
		lo, hi = hi, lo
	}

	size := width(lo, hi)

	n = Number{digits: mean(lo.digits, hi.digits, false, size)}
	if lo.Less(n) && n.Less(hi) {
		return n, nil
	}

	// The truncation error at size+1 digits is below half of the smallest gap
	// between distinct size digit numbers.
	return Number{digits: mean(lo.digits, hi.digits, false, size+1)}, nil
}

// BetweenZero returns a number strictly between zero and a.
func BetweenZero(a Number) (n Number, err error) {
	return Between(Number{}, a)
}

// BetweenOne returns a number strictly between a and one.
func BetweenOne(a Number) Number {
	n := AverageWithOne(a)
	if a.Less(n) {
		return n
	}

	return Number{digits: mean(a.digits, nil, true, len(a.digits)+1)}
}
