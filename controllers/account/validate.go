package accountcontroller

import "regexp"

// emailPattern matches the storefront's form check: something before and
// after an @, with a dot in the domain, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordStrength buckets a password by a five-point score: length ≥ 8,
// lowercase, uppercase, digit, and symbol each score one. Two or fewer is
// weak, five is strong.
func PasswordStrength(password string) string {
	score := 0
	if len(password) >= 8 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	for _, hit := range []bool{lower, upper, digit, symbol} {
		if hit {
			score++
		}
	}

	switch {
	case score <= 2:
		return "weak"
	case score <= 4:
		return "medium"
	default:
		return "strong"
	}
}
