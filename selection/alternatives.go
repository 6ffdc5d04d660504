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
	"slices"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/internal"
)

// BySort returns the k-th element of arr in the given order by sorting arr
// in place. It costs O(n log n) and serves as the reference answer.
func BySort[T cmp.Ordered](arr []T, k int, order common.Order) (T, error) {
	var zero T
	if err := checkAlternative(arr, k, order); err != nil {
		return zero, err
	}
	slices.SortFunc(arr, common.CompareFor[T](order))
	return arr[k-1], nil
}

// ByHeap returns the k-th element of arr in the given order using a heap
// bounded to k elements. arr is left untouched. Cost is O(n log k) time
// and O(k) space.
func ByHeap[T cmp.Ordered](arr []T, k int, order common.Order) (T, error) {
	var zero T
	if err := checkAlternative(arr, k, order); err != nil {
		return zero, err
	}
	h := internal.NewBoundedHeap(k, common.CompareFor[T](order))
	for _, v := range arr {
		h.Push(v)
	}
	return h.Peek(), nil
}

func checkAlternative[T any](arr []T, k int, order common.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if arr == nil {
		return common.ErrNullInput
	}
	return common.CheckRank(len(arr), k)
}
