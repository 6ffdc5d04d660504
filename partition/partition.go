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

// Package partition rearranges a range of a slice around a pivot.
//
// Two classic schemes are provided. Lomuto takes the last element of the
// range as pivot and returns the pivot's final sorted position. Hoare takes
// the first element as pivot and returns a boundary p such that every
// element of [low, p] is ordered no later than every element of [p+1, high];
// the pivot itself may end up on either side.
//
// All functions partition in place. The caller owns the slice and must not
// share it with concurrent callers for the duration of the call.
package partition

import (
	"cmp"
	"fmt"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/internal"
)

// Partition rearranges arr[low..high] around a pivot chosen by scheme and
// returns the split index. A degenerate range (low >= high) is returned
// as-is without any comparisons. Low must still index the slice, so an
// empty slice is always rejected with common.ErrInvalidRange.
//
// Errors are reported before any element moves: common.ErrNullInput for a
// nil slice, common.ErrInvalidRange for bounds outside the slice and
// common.ErrInvalidOption for an unknown order or scheme.
func Partition[T cmp.Ordered](arr []T, low int, high int, order common.Order, scheme common.Scheme) (int, error) {
	if err := order.Validate(); err != nil {
		return 0, err
	}
	return PartitionFunc(arr, low, high, common.CompareFor[T](order), scheme)
}

// Hoare partitions arr[low..high] around arr[low]. See Partition.
func Hoare[T cmp.Ordered](arr []T, low int, high int, order common.Order) (int, error) {
	return Partition(arr, low, high, order, common.Hoare)
}

// Lomuto partitions arr[low..high] around arr[high] and returns the index
// the pivot settled at. See Partition.
func Lomuto[T cmp.Ordered](arr []T, low int, high int, order common.Order) (int, error) {
	return Partition(arr, low, high, order, common.Lomuto)
}

// PartitionFunc is Partition for any element type, ordered by compare.
func PartitionFunc[T any](arr []T, low int, high int, compare common.CompareFn[T], scheme common.Scheme) (int, error) {
	if err := validate(arr, low, high); err != nil {
		return 0, err
	}
	if err := scheme.Validate(); err != nil {
		return 0, err
	}
	if compare == nil {
		return 0, fmt.Errorf("%w: nil comparator", common.ErrInvalidOption)
	}
	if low >= high {
		return low, nil
	}
	if scheme == common.Hoare {
		return internal.HoarePartition(arr, low, high, compare), nil
	}
	return internal.LomutoPartition(arr, low, high, compare), nil
}

func validate[T any](arr []T, low int, high int) error {
	if arr == nil {
		return common.ErrNullInput
	}
	return common.CheckRange(len(arr), low, high)
}
