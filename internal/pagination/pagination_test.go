package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindowBounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		size       int
		raw        string
		wantStart  int
		wantEnd    int
		wantPrev   string
		wantNext   string
		wantLast   int
	}{
		{"first of three pages", 25, 10, "1", 0, 10, Disabled, "/?page=2", 3},
		{"middle page", 25, 10, "2", 10, 20, "/?page=1", "/?page=3", 3},
		{"last short page", 25, 10, "3", 20, 25, "/?page=2", Disabled, 3},
		{"exact multiple", 20, 10, "2", 10, 20, "/?page=1", Disabled, 2},
		{"single page", 3, 10, "1", 0, 3, Disabled, Disabled, 1},
		{"empty listing", 0, 10, "1", 0, 0, Disabled, Disabled, 0},
		{"out of range", 25, 10, "9", 25, 25, "/?page=8", "/?page=10", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Paginate(tt.total, tt.size, tt.raw, "/")
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
			assert.Equal(t, tt.wantPrev, w.Prev)
			assert.Equal(t, tt.wantNext, w.Next)
			assert.Equal(t, tt.wantLast, w.Last)
			assert.LessOrEqual(t, w.Len(), tt.size)
			assert.GreaterOrEqual(t, w.Start, 0)
			assert.LessOrEqual(t, w.End, tt.total)
		})
	}
}

func TestPaginateNormalizesBadPageParams(t *testing.T) {
	base := Paginate(25, 10, "1", "/")
	for _, raw := range []string{"", "abc", "-3", "0", "1.5", "+2", " 2", "2x"} {
		t.Run(fmt.Sprintf("raw=%q", raw), func(t *testing.T) {
			assert.Equal(t, base, Paginate(25, 10, raw, "/"))
		})
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for page := 1; page <= 6; page++ {
			w := Paginate(total, 7, fmt.Sprint(page), "/")
			assert.LessOrEqual(t, w.Len(), 7, "total=%d page=%d", total, page)
			assert.GreaterOrEqual(t, w.Start, 0)
			assert.LessOrEqual(t, w.End, total)
			assert.Equal(t, page == 1, w.Prev == Disabled, "prev total=%d page=%d", total, page)
			assert.Equal(t, total == 0 || page == w.Last, w.Next == Disabled, "next total=%d page=%d", total, page)
		}
	}
}
