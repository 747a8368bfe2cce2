package pagination

const (
	// DefaultPage is used when the caller omits or botches the page parameter.
	DefaultPage = 1
	// DefaultLimit is used when the caller omits or botches the limit parameter.
	DefaultLimit = 20
	// MaxLimit caps a single page so pathological limits cannot scan the table.
	MaxLimit = 200
)

// Clamp normalizes offset-pagination parameters: non-positive values fall
// back to the defaults and the limit is capped at MaxLimit. Malformed
// pagination is corrected rather than rejected.
func Clamp(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset converts a (page, limit) pair into a SQL OFFSET value.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
