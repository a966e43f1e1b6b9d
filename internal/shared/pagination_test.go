package shared

import "testing"

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                 string
		limit, offset, total int
		start, end           int
	}{
		{"first page", 10, 0, 25, 0, 10},
		{"middle page", 10, 10, 25, 10, 20},
		{"short last page", 10, 20, 25, 20, 25},
		{"offset past end", 10, 40, 25, 25, 25},
		{"no limit", 0, 0, 25, 0, 25},
		{"no limit with offset", 0, 5, 25, 5, 25},
		{"negative offset", 10, -3, 25, 0, 10},
		{"empty collection", 10, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.limit, tt.offset, tt.total)
			if start != tt.start || end != tt.end {
				t.Fatalf("bounds = (%d, %d), want (%d, %d)", start, end, tt.start, tt.end)
			}
		})
	}
}
