package utils

import "fmt"

// FormatCents renders an integer-cent amount as a dollar string, e.g.
// 12999 -> "$129.99".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
