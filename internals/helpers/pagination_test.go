package helper

import "testing"

func TestSortColumnWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "book_created_at",
		"price":      "book_price",
	}

	cases := []struct {
		name      string
		requested string
		want      string
	}{
		{"known key", "price", "book_price"},
		{"case and spacing normalized", "  Created_At ", "book_created_at"},
		{"unknown key falls back", "author", "book_created_at"},
		{"empty falls back", "", "book_created_at"},
		{"raw column name is not accepted", "book_price", "book_created_at"},
		{"sql payload falls back", "book_price; DROP TABLE books;--", "book_created_at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SortColumn(allowed, tc.requested, "book_created_at"); got != tc.want {
				t.Fatalf("SortColumn(%q) = %q, want %q", tc.requested, got, tc.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 25, 0},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.perPage); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}
