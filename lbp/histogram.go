// SPDX-License-Identifier: MIT

package lbp

// Total returns the number of counted patterns (the number of window centers).
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// IsZero reports whether no pattern was counted.
func (h *Histogram) IsZero() bool {
	for _, c := range h {
		if c != 0 {
			return false
		}
	}
	return true
}

// NonZero lists the non-empty buckets in ascending code order.
func (h *Histogram) NonZero() []Bucket {
	var out []Bucket
	for code, c := range h {
		if c != 0 {
			out = append(out, Bucket{Code: code, Count: c})
		}
	}
	return out
}

// Floats returns the counts as a fresh []float64 of length Buckets,
// the form consumed by numeric downstream code.
func (h *Histogram) Floats() []float64 {
	out := make([]float64, Buckets)
	for i, c := range h {
		out[i] = float64(c)
	}
	return out
}

// Slice returns the counts as a fresh []int of length Buckets.
func (h *Histogram) Slice() []int {
	out := make([]int, Buckets)
	copy(out, h[:])
	return out
}
