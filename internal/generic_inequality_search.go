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
	"github.com/apache/orderstat-go/common"
)

type Inequality int64

const (
	InequalityLT Inequality = iota
	InequalityLE
	InequalityGE
	InequalityGT
)

// FindWithInequality searches the ascending range arr[low..high] for the
// element nearest to v that satisfies "arr[i] crit v": the largest such
// index for LT and LE, the smallest for GE and GT. It returns -1 when no
// element qualifies.
func FindWithInequality[T any](arr []T, low int, high int, v T, crit Inequality, compare common.CompareFn[T]) int {
	if len(arr) == 0 {
		return -1
	}
	lo := low
	hi := high
	for lo <= hi {
		if hi-lo <= 1 {
			return resolve(arr, lo, hi, v, crit, compare)
		}
		mid := lo + (hi-lo)/2
		ret := probe(arr, mid, mid+1, v, crit, compare)
		if ret == -1 {
			hi = mid
		} else if ret == 1 {
			lo = mid + 1
		} else {
			return getIndex(mid, mid+1, crit)
		}
	}
	return -1
}

func satisfies(c int, crit Inequality) bool {
	switch crit {
	case InequalityLT:
		return c < 0
	case InequalityLE:
		return c <= 0
	case InequalityGE:
		return c >= 0
	case InequalityGT:
		return c > 0
	default:
		panic("invalid inequality")
	}
}

func resolve[T any](arr []T, lo int, hi int, v T, crit Inequality, compare common.CompareFn[T]) int {
	first, second := hi, lo
	if crit == InequalityGE || crit == InequalityGT {
		first, second = lo, hi
	}
	if satisfies(compare(arr[first], v), crit) {
		return first
	}
	if lo != hi && satisfies(compare(arr[second], v), crit) {
		return second
	}
	return -1
}

// probe reports whether the answer lies at or left of a (-1), at or right
// of b (1), or is determined by the adjacent pair a, b (0).
func probe[T any](arr []T, a int, b int, v T, crit Inequality, compare common.CompareFn[T]) int {
	switch crit {
	case InequalityLT, InequalityGE:
		if compare(v, arr[a]) <= 0 {
			return -1
		}
		if compare(arr[b], v) < 0 {
			return 1
		}
		return 0
	case InequalityLE, InequalityGT:
		if compare(v, arr[a]) < 0 {
			return -1
		}
		if compare(arr[b], v) <= 0 {
			return 1
		}
		return 0
	default:
		panic("invalid inequality")
	}
}

func getIndex(a int, b int, crit Inequality) int {
	switch crit {
	case InequalityLT, InequalityLE:
		return a
	case InequalityGE, InequalityGT:
		return b
	default:
		panic("invalid inequality")
	}
}
