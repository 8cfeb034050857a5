package cart

import "github.com/garv2214/Toolkit/internal/domain"

// Merge consolidates a guest cart into a user cart after sign-in. It is
// a pure function: the result starts from userCart's lines in order,
// guest lines accumulate into matching lines, and guest-only lines are
// appended in guest order. Neither input is modified.
func Merge(guestCart, userCart domain.Cart) domain.Cart {
	merged := userCart.Clone()

	for _, guestLine := range guestCart {
		if i := merged.Find(guestLine.ProductID); i >= 0 {
			merged[i].Quantity += guestLine.Quantity
		} else {
			merged = append(merged, guestLine)
		}
	}

	return merged
}
