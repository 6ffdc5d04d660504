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

package selection

import (
	"cmp"
	"errors"

	"github.com/apache/orderstat-go/common"
)

var ErrNoDistinctValue = errors.New("no second distinct value")

// MinMax returns the smallest and largest elements of arr in one pass.
func MinMax[T cmp.Ordered](arr []T) (T, T, error) {
	var zero T
	if arr == nil {
		return zero, zero, common.ErrNullInput
	}
	if len(arr) == 0 {
		return zero, zero, common.ErrEmptyInput
	}
	lo, hi := arr[0], arr[0]
	for _, v := range arr[1:] {
		if cmp.Less(v, lo) {
			lo = v
		} else if cmp.Less(hi, v) {
			hi = v
		}
	}
	return lo, hi, nil
}

// SecondSmallest returns the smallest element strictly greater than the
// minimum. ErrNoDistinctValue is returned when all elements are equal.
func SecondSmallest[T cmp.Ordered](arr []T) (T, error) {
	return secondDistinct(arr, cmp.Compare[T])
}

// SecondLargest returns the largest element strictly smaller than the
// maximum. ErrNoDistinctValue is returned when all elements are equal.
func SecondLargest[T cmp.Ordered](arr []T) (T, error) {
	return secondDistinct(arr, common.CompareFor[T](common.Descending))
}

func secondDistinct[T any](arr []T, compare common.CompareFn[T]) (T, error) {
	var zero T
	if arr == nil {
		return zero, common.ErrNullInput
	}
	if len(arr) == 0 {
		return zero, common.ErrEmptyInput
	}

	first := arr[0]
	second := zero
	found := false
	for _, v := range arr[1:] {
		c := compare(v, first)
		if c < 0 {
			first, second, found = v, first, true
		} else if c > 0 && (!found || compare(v, second) < 0) {
			second, found = v, true
		}
	}
	if !found {
		return zero, ErrNoDistinctValue
	}
	return second, nil
}
