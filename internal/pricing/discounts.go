package pricing

import "strings"

// Discount codes and their rates. Static configuration, not persisted.
var discountCodes = map[string]float64{
	"WELCOME10": 0.10,
	"SUMMER20":  0.20,
	"STUDENT15": 0.15,
	"ARTIST25":  0.25,
}

// ResolveRate maps a discount code to its rate. Codes are
// case-insensitive; unknown codes resolve to 0 rather than failing —
// code validity is a silent pass-through.
func ResolveRate(code string) float64 {
	return discountCodes[strings.ToUpper(code)]
}

// IsValidCode reports whether the code is in the discount table.
func IsValidCode(code string) bool {
	_, ok := discountCodes[strings.ToUpper(code)]
	return ok
}

// DiscountPercent returns the code's rate as a whole percentage.
func DiscountPercent(code string) int {
	return int(RoundHalfUp(ResolveRate(code) * 100))
}

// ValidCodes lists the accepted discount codes.
func ValidCodes() []string {
	return []string{"WELCOME10", "SUMMER20", "STUDENT15", "ARTIST25"}
}

// Savings is the amount saved on a price at a whole-percentage
// discount.
func Savings(price int64, discountPercent int) int64 {
	return RoundHalfUp(float64(price) * float64(discountPercent) / 100)
}
