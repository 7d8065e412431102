package diag

import "fmt"

// Ordinal renders a 1-based line number with its English suffix:
// 1st, 2nd, 3rd, 4th ... 11th, 12th, 13th ... 21st, 22nd.
func Ordinal(n uint32) string {
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
