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

package internal

import (
	"cmp"

	"github.com/apache/orderstat-go/common"
)

// PivotFunc picks the index of the pivot inside arr[lo..hi].
type PivotFunc[T any] func(arr []T, lo int, hi int, compare common.CompareFn[T]) int

// HoarePartition partitions arr[lo..hi] around v = arr[lo] and returns j
// such that every element of arr[lo..j] is ordered no later than every
// element of arr[j+1..hi]. Requires lo < hi; the result lies in [lo, hi-1].
// Elements equal to v stop both scans, so runs of duplicates are split
// between the two sides.
func HoarePartition[T any](arr []T, lo int, hi int, compare common.CompareFn[T]) int {
	v := arr[lo]
	i := lo - 1
	j := hi + 1
	for {
		i++
		for compare(arr[i], v) < 0 {
			i++
		}
		j--
		for compare(v, arr[j]) < 0 {
			j--
		}
		if i >= j {
			return j
		}
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// LomutoPartition partitions arr[lo..hi] around v = arr[hi] and returns the
// final index p of v: arr[lo..p-1] <= v < arr[p+1..hi] under compare.
// Requires lo < hi.
func LomutoPartition[T any](arr []T, lo int, hi int, compare common.CompareFn[T]) int {
	v := arr[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if compare(arr[j], v) <= 0 {
			i++
			if i != j {
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
	}
	arr[i+1], arr[hi] = arr[hi], arr[i+1]
	return i + 1
}

// QuickSelect returns the element that would sit at index target if
// arr[lo..hi] were sorted ascending. It uses the given scheme with its
// fixed pivot. The slice is partially partitioned in place.
func QuickSelect[T cmp.Ordered](arr []T, lo int, hi int, target int, scheme common.Scheme) T {
	return QuickSelectFunc(arr, lo, hi, target, scheme, nil, cmp.Compare[T])
}

// QuickSelectFunc is QuickSelect with a custom comparator and pivot picker.
// A nil pivot keeps the scheme's fixed pivot position (first element for
// Hoare, last for Lomuto). A picked pivot is first swapped into that slot.
// The caller guarantees lo <= target <= hi.
func QuickSelectFunc[T any](arr []T, lo int, hi int, target int, scheme common.Scheme, pivot PivotFunc[T], compare common.CompareFn[T]) T {
	for lo < hi {
		if pivot != nil {
			slot := hi
			if scheme == common.Hoare {
				slot = lo
			}
			p := pivot(arr, lo, hi, compare)
			arr[p], arr[slot] = arr[slot], arr[p]
		}

		if scheme == common.Hoare {
			// Hoare does not pin the pivot, so j is only a boundary.
			j := HoarePartition(arr, lo, hi, compare)
			if target <= j {
				hi = j
			} else {
				lo = j + 1
			}
			continue
		}

		j := LomutoPartition(arr, lo, hi, compare)
		if j == target {
			return arr[j]
		}
		if j > target {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
	return arr[target]
}
