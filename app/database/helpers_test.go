package database

import "testing"

func TestOffsetFor(t *testing.T) {
	tests := []struct {
		page, pageSize, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}
	for _, tt := range tests {
		if got := offsetFor(tt.page, tt.pageSize); got != tt.want {
			t.Errorf("offsetFor(%d, %d) = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term, want string
	}{
		{"math", "%math%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, tt := range tests {
		if got := likePattern(tt.term); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestPrefixColumns(t *testing.T) {
	got := prefixColumns("s", "id, name, email")
	want := "s.id, s.name, s.email"
	if got != want {
		t.Errorf("prefixColumns = %q, want %q", got, want)
	}
}
