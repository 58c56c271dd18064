package vim

import "math"

// maxCount caps counts so repeated digits cannot overflow.
const maxCount = math.MaxInt32

// accumulate appends a decimal digit to n, saturating at maxCount.
func accumulate(n int, digit rune) int {
	d := int(digit - '0')
	if n > (maxCount-d)/10 {
		return maxCount
	}
	return n*10 + d
}

// multiply combines the counts before and after an operator, as in 2d3w.
// Zero means no count was typed.
func multiply(a, b int) int {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a > maxCount/b:
		return maxCount
	}
	return a * b
}
