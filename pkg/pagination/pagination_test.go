package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{1, 1},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeOffset(t *testing.T) {
	if got := NormalizeOffset(-1); got != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", got)
	}
	if got := NormalizeOffset(40); got != 40 {
		t.Errorf("valid offset should pass through, got %d", got)
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage(Params{Limit: 500, Offset: -3}, 42)
	if page.Limit != MaxLimit {
		t.Errorf("expected clamped limit, got %d", page.Limit)
	}
	if page.Offset != 0 {
		t.Errorf("expected clamped offset, got %d", page.Offset)
	}
	if page.Total != 42 {
		t.Errorf("expected total 42, got %d", page.Total)
	}
}
