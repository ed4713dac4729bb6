package passgen

// MaxStrength is the highest score Strength returns.
const MaxStrength = 5

// Strength scores password on a 0..5 scale: one point each for reaching 8,
// 12 and 16 characters and one point for each present class (lowercase,
// uppercase, digit, other), capped at MaxStrength.
func Strength(password string) int {
	score := 0

	n := len([]rune(password))
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			score++
		}
	}

	return min(score, MaxStrength)
}

// StrengthLabel names a score the way the web client's meter did.
func StrengthLabel(score int) string {
	switch {
	case score <= 2:
		return "weak"
	case score <= 3:
		return "fair"
	case score <= 4:
		return "good"
	default:
		return "strong"
	}
}
