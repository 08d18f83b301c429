// Package filter holds the row-dropping stages of the cleaning pipeline and
// the predicates that pick out the columns gating them.
package filter

import "strings"

// Critical reports whether a normalized column name denotes a price or
// quantity field. Rows must carry valid values in every critical column to
// survive the filters. Matching is a case-sensitive substring check against
// the already-lowercased normalized name.
func Critical(name string) bool {
	return PriceLike(name) || QuantityLike(name)
}

// QuantityLike matches quantity-pattern column names.
func QuantityLike(name string) bool {
	return strings.Contains(name, "quantity") || strings.Contains(name, "qty")
}

// PriceLike matches price-pattern column names.
func PriceLike(name string) bool {
	return strings.Contains(name, "price")
}
