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

// Package selection finds order statistics of a slice without sorting it.
//
// Select and its variants run quickselect: the working range is partitioned
// repeatedly and only the side holding the requested rank is kept. Expected
// cost is O(n) comparisons; with the default fixed pivot, sorted or
// adversarial input degrades to O(n^2). The slice is rearranged in place.
//
// Ranks are 1-based in the requested order, so k=1 with Ascending is the
// minimum and k=1 with Descending the maximum. With duplicate values the
// arrangement left behind is scheme dependent, but the returned value is
// always the true k-th order statistic. On return every element before the
// selected position orders no later than it, and every element after it
// orders no earlier.
package selection

import (
	"cmp"
	"fmt"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/internal"
)

// Select returns the k-th element (1-based) of arr in the given order.
//
// Errors are reported before any element moves: common.ErrNullInput for a
// nil slice, common.ErrEmptyInput for an empty one, common.ErrOutOfRange
// when k is outside [1, len(arr)] and common.ErrInvalidOption for an
// unknown order, scheme or pivot policy.
func Select[T cmp.Ordered](arr []T, k int, order common.Order, opts ...OptionFunc) (T, error) {
	if err := order.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return SelectFunc(arr, k, common.CompareFor[T](order), opts...)
}

// KthSmallest returns the k-th smallest element of arr.
func KthSmallest[T cmp.Ordered](arr []T, k int, opts ...OptionFunc) (T, error) {
	return Select(arr, k, common.Ascending, opts...)
}

// KthLargest returns the k-th largest element of arr. It drives an
// ascending partition towards index len(arr)-k.
func KthLargest[T cmp.Ordered](arr []T, k int, opts ...OptionFunc) (T, error) {
	var zero T
	options, err := checkSelect(arr, k, opts...)
	if err != nil {
		return zero, err
	}
	return selectIndex(arr, len(arr)-k, cmp.Compare[T], options), nil
}

// SelectFunc returns the k-th element (1-based) of arr ordered by compare.
func SelectFunc[T any](arr []T, k int, compare common.CompareFn[T], opts ...OptionFunc) (T, error) {
	var zero T
	if compare == nil {
		return zero, fmt.Errorf("%w: nil comparator", common.ErrInvalidOption)
	}
	options, err := checkSelect(arr, k, opts...)
	if err != nil {
		return zero, err
	}
	return selectIndex(arr, k-1, compare, options), nil
}

func checkSelect[T any](arr []T, k int, opts ...OptionFunc) (*selectOptions, error) {
	if arr == nil {
		return nil, common.ErrNullInput
	}
	if err := common.CheckRank(len(arr), k); err != nil {
		return nil, err
	}
	return newSelectOptions(opts...)
}

func selectIndex[T any](arr []T, target int, compare common.CompareFn[T], options *selectOptions) T {
	return internal.QuickSelectFunc(arr, 0, len(arr)-1, target, options.scheme, pivotFunc[T](options), compare)
}
