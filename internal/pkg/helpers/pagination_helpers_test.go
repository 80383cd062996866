package helpers

import "testing"

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 25, 1, 25},
		{"limit over max", 2, 500, 2, 10},
		{"valid", 4, 100, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ClampPagination(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	if offset != 40 || limit != 20 {
		t.Errorf("CalculateOffsetLimit(3, 20) = (%d, %d), want (40, 20)", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(0, 0)
	if offset != 0 || limit != 10 {
		t.Errorf("CalculateOffsetLimit(0, 0) = (%d, %d), want (0, 10)", offset, limit)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		totalRecords   int64
		page           int
		limit          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"zero records means zero pages", 0, 1, 10, 0, false, false},
		{"exact fit", 20, 1, 10, 2, true, false},
		{"remainder rounds up", 21, 2, 10, 3, true, true},
		{"last page", 21, 3, 10, 3, false, true},
		{"single page", 5, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.totalRecords, tt.page, tt.limit)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNextPage != tt.wantHasNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tt.wantHasNext)
			}
			if p.HasPrevPage != tt.wantHasPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tt.wantHasPrev)
			}
			if p.TotalRecords != tt.totalRecords {
				t.Errorf("TotalRecords = %d, want %d", p.TotalRecords, tt.totalRecords)
			}
		})
	}
}

// The pagination law: totalPages == ceil(totalRecords/limit) and
// hasNextPage == (currentPage < totalPages), for a spread of inputs.
func TestPaginationLaw(t *testing.T) {
	for _, total := range []int64{0, 1, 9, 10, 11, 99, 100, 101, 1000} {
		for _, limit := range []int{1, 7, 10, 100} {
			for _, page := range []int{1, 2, 5} {
				p := NewPagination(total, page, limit)
				wantPages := 0
				if total > 0 {
					wantPages = int((total + int64(limit) - 1) / int64(limit))
				}
				if p.TotalPages != wantPages {
					t.Fatalf("total=%d limit=%d: TotalPages = %d, want %d", total, limit, p.TotalPages, wantPages)
				}
				if p.HasNextPage != (p.CurrentPage < p.TotalPages) {
					t.Fatalf("total=%d limit=%d page=%d: hasNextPage inconsistent", total, limit, page)
				}
			}
		}
	}
}
