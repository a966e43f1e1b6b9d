package shared

// PageBounds returns the start and end offsets of one page within a
// collection of length total. A non-positive limit selects the whole
// collection from offset onward.
func PageBounds(limit, offset, total int) (int, int) {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if limit <= 0 {
		return start, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
