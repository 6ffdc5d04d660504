/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package median computes medians of integer and floating-point data.
//
// OfTwoSorted finds the median of the union of two ascending slices in
// O(log(min(m, n))) by binary searching how many leading elements of the
// shorter slice fall into the lower half of the merged order. The inputs are
// only read. OfTwoSortedMerge is the linear merge used as a reference.
//
// Of finds the median of a single unsorted slice by quickselect and
// rearranges it in place.
//
// Medians are returned as float64; the middle pair of an even-length input
// is averaged without integer truncation.
package median

import (
	"github.com/apache/orderstat-go/common"
)

// OfTwoSorted returns the median of all elements of a and b, which must both
// be sorted ascending. Either slice may be empty or nil, but not both.
// Unsorted input yields an unspecified but deterministic value.
func OfTwoSorted[T common.Number](a []T, b []T) (float64, error) {
	if len(a)+len(b) == 0 {
		return 0, common.ErrEmptyInput
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	m, n := len(a), len(b)
	half := (m + n + 1) / 2
	low, high := 0, m
	for low <= high {
		cut1 := low + (high-low)/2
		cut2 := half - cut1

		// A missing neighbour past either end of a slice acts as -inf on the
		// left of a cut and +inf on the right, so it never fails a check.
		if cut1 > 0 && cut2 < n && a[cut1-1] > b[cut2] {
			high = cut1 - 1
			continue
		}
		if cut2 > 0 && cut1 < m && b[cut2-1] > a[cut1] {
			low = cut1 + 1
			continue
		}

		left := maxLeft(a, b, cut1, cut2)
		if (m+n)%2 == 1 {
			return float64(left), nil
		}
		right := minRight(a, b, cut1, cut2)
		return (float64(left) + float64(right)) / 2, nil
	}
	// Moving right at cut c and left at cut c+1 test the same pair of
	// elements with opposite outcomes, so the loop always returns.
	panic("unreachable")
}

// maxLeft returns the largest element left of both cuts. At least one cut
// is positive because the lower half is never empty.
func maxLeft[T common.Number](a []T, b []T, cut1 int, cut2 int) T {
	if cut1 == 0 {
		return b[cut2-1]
	}
	if cut2 == 0 {
		return a[cut1-1]
	}
	return max(a[cut1-1], b[cut2-1])
}

// minRight returns the smallest element right of both cuts. Only called for
// an even total, where the upper half is never empty.
func minRight[T common.Number](a []T, b []T, cut1 int, cut2 int) T {
	if cut1 == len(a) {
		return b[cut2]
	}
	if cut2 == len(b) {
		return a[cut1]
	}
	return min(a[cut1], b[cut2])
}

// OfTwoSortedMerge returns the same value as OfTwoSorted by merging a and b
// into a new slice. It costs O(m+n) time and space.
func OfTwoSortedMerge[T common.Number](a []T, b []T) (float64, error) {
	total := len(a) + len(b)
	if total == 0 {
		return 0, common.ErrEmptyInput
	}

	merged := make([]T, 0, total)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	mid := total / 2
	if total%2 == 1 {
		return float64(merged[mid]), nil
	}
	return (float64(merged[mid-1]) + float64(merged[mid])) / 2, nil
}
