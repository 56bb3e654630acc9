package validators

// IsValidNationalID reports whether raw is a well-formed national ID number
// according to the weighted-digit checksum rule.
//
// The check works as follows:
//  1. Strip all non-digit characters from raw.
//  2. Reject if fewer than 5 or more than 9 digits remain.
//  3. Left-pad with zeros to exactly 9 digits.
//  4. Even positions (0-indexed) contribute the digit itself; odd positions
//     contribute the doubled digit, minus 9 when the product exceeds 9.
//  5. The ID is valid iff the sum of all nine contributions is divisible by 10.
//
// The function is pure and never errors: any input failing the length
// constraints simply returns false.
func IsValidNationalID(raw string) bool {
	digits := make([]int, 0, len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) < 5 || len(digits) > 9 {
		return false
	}

	// left-pad with zeros to 9 digits
	padded := make([]int, 9-len(digits), 9)
	padded = append(padded, digits...)

	total := 0
	for i, digit := range padded {
		step := digit
		if i%2 == 1 {
			step = digit * 2
			if step > 9 {
				step -= 9
			}
		}
		total += step
	}

	return total%10 == 0
}
