package domain_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/backwardspy/randnd/internal/domain"
)

// TestHistory_CapacityInvariant verifies len == min(N, 10) after every append.
func TestHistory_CapacityInvariant(t *testing.T) {
	h := domain.NewHistory()
	for n := 1; n <= 25; n++ {
		h.Append(fmt.Sprintf("p%d", n))
		want := n
		if want > domain.HistoryCapacity {
			want = domain.HistoryCapacity
		}
		if got := h.Len(); got != want {
			t.Fatalf("after %d appends: len = %d, want %d", n, got, want)
		}
	}
}

// TestHistory_FIFOEviction verifies the 11th append evicts exactly the oldest
// entry and keeps the rest in order.
func TestHistory_FIFOEviction(t *testing.T) {
	h := domain.NewHistory()
	for n := 1; n <= 11; n++ {
		h.Append(fmt.Sprintf("p%d", n))
	}

	want := []string{"p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11"}
	if diff := cmp.Diff(want, h.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_TwelveAppends(t *testing.T) {
	h := domain.NewHistory()
	for n := 1; n <= 12; n++ {
		h.Append(fmt.Sprintf("p%d", n))
	}

	want := []string{"p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11", "p12"}
	if diff := cmp.Diff(want, h.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if current, ok := h.Current(); !ok || current != "p12" {
		t.Errorf("current = %q, %v; want p12, true", current, ok)
	}
}

func TestHistory_Current(t *testing.T) {
	h := domain.NewHistory()
	if _, ok := h.Current(); ok {
		t.Error("empty history should have no current phrase")
	}

	h.Append("a")
	h.Append("b")
	if current, _ := h.Current(); current != "b" {
		t.Errorf("current = %q, want b", current)
	}
}

// TestHistory_Recent verifies most-recent-first ordering excluding the tail.
func TestHistory_Recent(t *testing.T) {
	tests := []struct {
		name    string
		appends []string
		want    []string
	}{
		{
			name:    "empty history",
			appends: nil,
			want:    nil,
		},
		{
			name:    "single phrase has no history items",
			appends: []string{"a"},
			want:    nil,
		},
		{
			name:    "three phrases",
			appends: []string{"a", "b", "c"},
			want:    []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := domain.NewHistory()
			for _, p := range tt.appends {
				h.Append(p)
			}
			if diff := cmp.Diff(tt.want, h.Recent()); diff != "" {
				t.Errorf("recent mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestOpacityForRank pins the fade formula, including the unclamped rank-1
// value above 1.0.
func TestOpacityForRank(t *testing.T) {
	tests := []struct {
		rank int
		want float64
	}{
		{rank: 1, want: 1.1},
		{rank: 2, want: 1.0},
		{rank: 5, want: 0.7},
		{rank: 9, want: 0.3},
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		got := domain.OpacityForRank(tt.rank)
		if !cmp.Equal(tt.want, got, approx) {
			t.Errorf("OpacityForRank(%d) = %v, want %v", tt.rank, got, tt.want)
		}
	}
}
