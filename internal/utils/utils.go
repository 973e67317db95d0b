package utils

// RoundUp2 - Rounds up the given number to the nearest exponent of 2
func RoundUp2(num int) (result int) {
	result = 1
	for result < num {
		result <<= 1
	}

	return
}
