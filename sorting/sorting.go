// SPDX-License-Identifier: MIT
//
// Package sorting provides two textbook comparison sorts over cmp.Ordered
// values: an in-place quicksort on an index range and a copying bubble sort
// that also reports how many comparisons it made.
//
// Complexity:
//
//   - QuickSort:  O(n log n) average, O(n²) worst; O(log n) stack.
//   - BubbleSort: O(n²) worst, O(n) on already sorted input; O(n) extra space.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrBadBounds indicates a QuickSort range outside the slice.
var ErrBadBounds = errors.New("sorting: invalid start/stop bounds")

// QuickSort sorts s[start..stop] (both inclusive) in place into
// non-decreasing order. It uses Hoare partitioning around the middle element.
//
// start == stop+1 denotes an empty range and is a no-op, so
// QuickSort(s, 0, len(s)-1) is valid for every slice, including empty ones.
//
// Errors:
//   - ErrBadBounds if start < 0, stop >= len(s) or start > stop+1.
func QuickSort[T cmp.Ordered](s []T, start, stop int) error {
	if start < 0 || stop >= len(s) || start > stop+1 {
		return fmt.Errorf("%w: start=%d stop=%d len=%d", ErrBadBounds, start, stop, len(s))
	}
	quickSort(s, start, stop)

	return nil
}

// quickSort recurses into the smaller side and loops on the larger one,
// keeping stack depth logarithmic.
func quickSort[T cmp.Ordered](s []T, start, stop int) {
	for start < stop {
		i, j := partition(s, start, stop)
		if j-start < stop-i {
			if start < j {
				quickSort(s, start, j)
			}
			start = i
		} else {
			if i < stop {
				quickSort(s, i, stop)
			}
			stop = j
		}
	}
}

// partition moves elements < pivot left and > pivot right. On return
// s[start..j] <= pivot <= s[i..stop] and j < i.
func partition[T cmp.Ordered](s []T, start, stop int) (int, int) {
	pivot := s[start+(stop-start)/2]
	i, j := start, stop
	for i <= j {
		for s[i] < pivot {
			i++
		}
		for s[j] > pivot {
			j--
		}
		if i <= j {
			s[i], s[j] = s[j], s[i]
			i++
			j--
		}
	}

	return i, j
}

// BubbleSort returns a sorted copy of s and the number of element
// comparisons performed. s itself is left untouched.
//
// Each pass stops at the position of the previous pass's last swap, so a
// sorted input costs len(s)-1 comparisons.
func BubbleSort[T cmp.Ordered](s []T) ([]T, int) {
	out := append([]T(nil), s...)
	comparisons := 0

	for n := len(out); n > 1; {
		lastSwap := 0
		for i := 1; i < n; i++ {
			comparisons++
			if out[i-1] > out[i] {
				out[i-1], out[i] = out[i], out[i-1]
				lastSwap = i
			}
		}
		n = lastSwap
	}

	return out, comparisons
}
