package base79

// digitAt returns ds[i], or zero past the end. Reading past the end is how the
// shorter operand is right padded without copying.
func digitAt(ds []uint8, i int) uint8 {
	if i < len(ds) {
		return ds[i]
	}

	return 0
}

// add returns a+b over n digits, both operands right padded with zeros. A
// carry out of the most significant digit is an integer part of exactly 1 and
// is returned as overflow.
func add(a, b []uint8, n int) (sum []uint8, overflow bool) {
	sum = make([]uint8, n)

	var carry uint8
	for k := n - 1; k >= 0; k-- {
		s := digitAt(a, k) + digitAt(b, k) + carry // at most 78+78+1

		if s >= Base {
			sum[k] = s - Base
			carry = 1
		} else {
			sum[k] = s
			carry = 0
		}
	}

	return sum, carry == 1
}

// halve divides sum (with its integer part given by overflow) by two in place,
// from the most significant digit down. The final remainder is dropped, so
// the result is truncated to len(sum) digits.
func halve(sum []uint8, overflow bool) []uint8 {
	var rem uint16
	if overflow {
		rem = 1
	}

	for k, d := range sum {
		v := rem*Base + uint16(d)

		sum[k] = uint8(v / 2)
		rem = v % 2
	}

	return sum
}

// trim drops trailing zero digits. Leading zeros are place values and stay.
func trim(ds []uint8) []uint8 {
	end := len(ds)
	for end > 0 && ds[end-1] == 0 {
		end--
	}

	if end == 0 {
		return nil
	}

	return ds[:end]
}

// mean returns the truncated average of a and b over n digits. one adds the
// implicit upper bound 1 in place of b.
func mean(a, b []uint8, one bool, n int) []uint8 {
	sum, overflow := add(a, b, n)

	// a and b are below 1, so a+b and a+1 are below 2 and at most one of the
	// two integer parts is set.
	return trim(halve(sum, overflow || one))
}
