// Package collection provides the generic slice helpers the service and
// report layers lean on. Collections in the store are small, they render on
// one dashboard page, so every helper is a plain linear pass.
//
//	low := collection.Filter(products, func(p *models.Product) bool { return p.LowStock() })
//	revenue := collection.Sum(invoices, func(i *models.Invoice) float64 { return i.Total })
//	byDate := collection.GroupBy(orders, func(o *models.Order) string { return o.OrderDate })
package collection

// Filter returns the elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false) when none
// does.
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy partitions s into a map keyed by the string fn returns. The sales
// report uses it to bucket orders by date.
func GroupBy[T any](s []T, fn func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, v := range s {
		out[fn(v)] = append(out[fn(v)], v)
	}
	return out
}

// Sum totals the values extracted by fn.
func Sum[T any](s []T, fn func(T) float64) float64 {
	var total float64
	for _, v := range s {
		total += fn(v)
	}
	return total
}
