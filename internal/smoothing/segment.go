package smoothing

import "sort"

// Segment is an inclusive index range [Start..End] between two
// consecutive anchors. Only the strictly interior indices are
// interpolated; Start and End are preserved.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Interior reports whether the segment has any indices to interpolate.
func (s Segment) Interior() bool {
	return s.End-s.Start >= 2
}

// FindSegments partitions a sequence of length n into segments bounded
// by anchors: the locked indices plus index 0 and n-1, which act as
// implicit anchors even when not locked.
//
// Anchors are sorted and deduplicated, so a locked endpoint does not
// produce a duplicate. Locked indices outside [0,n) are ignored.
// Adjacent anchor pairs with a == b are dropped; sequences shorter than
// two elements yield no segments.
func FindSegments(locked map[int]bool, n int) []Segment {
	if n < 2 {
		return nil
	}

	anchors := make([]int, 0, len(locked)+2)
	for i, isLocked := range locked {
		if isLocked && i >= 0 && i < n {
			anchors = append(anchors, i)
		}
	}
	sort.Ints(anchors)

	if len(anchors) == 0 || anchors[0] != 0 {
		anchors = append([]int{0}, anchors...)
	}
	if anchors[len(anchors)-1] != n-1 {
		anchors = append(anchors, n-1)
	}

	segments := make([]Segment, 0, len(anchors)-1)
	for i := 0; i+1 < len(anchors); i++ {
		if a, b := anchors[i], anchors[i+1]; b > a {
			segments = append(segments, Segment{Start: a, End: b})
		}
	}
	return segments
}
