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

// Package search locates values in slices sorted ascending.
package search

import (
	"cmp"
	"fmt"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/internal"
)

// Inequality names the relation "arr[i] crit v" a search satisfies.
type Inequality = internal.Inequality

const (
	LT = internal.InequalityLT
	LE = internal.InequalityLE
	GE = internal.InequalityGE
	GT = internal.InequalityGT
)

// Find returns the index of the element of arr nearest to v that satisfies
// "arr[i] crit v": the last such index for LT and LE, the first for GE and
// GT. It returns -1 when no element qualifies.
func Find[T cmp.Ordered](arr []T, v T, crit Inequality) (int, error) {
	if crit < LT || crit > GT {
		return -1, fmt.Errorf("%w: inequality %d", common.ErrInvalidOption, crit)
	}
	return internal.FindWithInequality(arr, 0, len(arr)-1, v, crit, cmp.Compare[T]), nil
}

// Floor returns the largest element not greater than v.
func Floor[T cmp.Ordered](arr []T, v T) (T, bool) {
	return valueAt(arr, internal.FindWithInequality(arr, 0, len(arr)-1, v, LE, cmp.Compare[T]))
}

// Ceil returns the smallest element not less than v.
func Ceil[T cmp.Ordered](arr []T, v T) (T, bool) {
	return valueAt(arr, internal.FindWithInequality(arr, 0, len(arr)-1, v, GE, cmp.Compare[T]))
}

// LowerBound returns the first index whose element is not less than v, or
// len(arr) if there is none. It is the position v would be inserted at.
func LowerBound[T cmp.Ordered](arr []T, v T) int {
	return orEnd(arr, internal.FindWithInequality(arr, 0, len(arr)-1, v, GE, cmp.Compare[T]))
}

// UpperBound returns the first index whose element is greater than v, or
// len(arr) if there is none.
func UpperBound[T cmp.Ordered](arr []T, v T) int {
	return orEnd(arr, internal.FindWithInequality(arr, 0, len(arr)-1, v, GT, cmp.Compare[T]))
}

func valueAt[T any](arr []T, idx int) (T, bool) {
	if idx < 0 {
		var zero T
		return zero, false
	}
	return arr[idx], true
}

func orEnd[T any](arr []T, idx int) int {
	if idx < 0 {
		return len(arr)
	}
	return idx
}
