package smoothing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindSegments(t *testing.T) {
	tests := []struct {
		name   string
		locked []int
		n      int
		want   []Segment
	}{
		{
			"no locks",
			nil,
			5,
			[]Segment{{0, 4}},
		},
		{
			"interior locks",
			[]int{2, 5},
			8,
			[]Segment{{0, 2}, {2, 5}, {5, 7}},
		},
		{
			"locks given out of order",
			[]int{5, 2},
			8,
			[]Segment{{0, 2}, {2, 5}, {5, 7}},
		},
		{
			"endpoints explicitly locked",
			[]int{0, 7},
			8,
			[]Segment{{0, 7}},
		},
		{
			"first index locked with interior lock",
			[]int{0, 3},
			6,
			[]Segment{{0, 3}, {3, 5}},
		},
		{
			"all locked",
			[]int{0, 1, 2, 3},
			4,
			[]Segment{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			"single element",
			nil,
			1,
			nil,
		},
		{
			"single locked element",
			[]int{0},
			1,
			nil,
		},
		{
			"two elements",
			nil,
			2,
			[]Segment{{0, 1}},
		},
		{
			"out of range locks ignored",
			[]int{-1, 3, 99},
			6,
			[]Segment{{0, 3}, {3, 5}},
		},
		{
			"empty sequence",
			nil,
			0,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSegments(lockSet(tt.locked), tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindSegments(%v, %d) mismatch (-want +got):\n%s", tt.locked, tt.n, diff)
			}
		})
	}
}

func TestFindSegments_AnchorsStrictlyIncreasing(t *testing.T) {
	segs := FindSegments(lockSet([]int{0, 0, 4, 4, 9}), 10)
	for i, s := range segs {
		if s.End <= s.Start {
			t.Errorf("segment %d = %+v is not strictly increasing", i, s)
		}
		if i > 0 && s.Start != segs[i-1].End {
			t.Errorf("segment %d = %+v does not start at previous end %d", i, s, segs[i-1].End)
		}
	}
}

func TestSegmentInterior(t *testing.T) {
	if (Segment{0, 1}).Interior() {
		t.Error("adjacent anchors should have no interior")
	}
	if !(Segment{0, 2}).Interior() {
		t.Error("segment of length 3 should have an interior")
	}
}

func lockSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
