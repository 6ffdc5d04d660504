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
	"encoding/binary"

	"github.com/twmb/murmur3"

	"github.com/apache/orderstat-go/common"
)

const (
	DEFAULT_PIVOT_SEED = uint64(9001)
)

// MedianOfThreePivot returns the index holding the median of the first,
// middle and last elements of arr[lo..hi].
func MedianOfThreePivot[T any](arr []T, lo int, hi int, compare common.CompareFn[T]) int {
	a, b, c := lo, lo+(hi-lo)/2, hi
	if compare(arr[b], arr[a]) < 0 {
		a, b = b, a
	}
	if compare(arr[c], arr[b]) < 0 {
		b = c
		if compare(arr[b], arr[a]) < 0 {
			b = a
		}
	}
	return b
}

// HashedPivot returns a picker choosing a pseudo-random index in [lo, hi]
// derived from murmur3 of the bounds. The same seed and input always yield
// the same sequence of pivots.
func HashedPivot[T any](seed uint64) PivotFunc[T] {
	return func(arr []T, lo int, hi int, _ common.CompareFn[T]) int {
		var key [16]byte
		binary.LittleEndian.PutUint64(key[:8], uint64(lo))
		binary.LittleEndian.PutUint64(key[8:], uint64(hi))
		h := murmur3.SeedSum64(seed, key[:])
		return lo + int(h%uint64(hi-lo+1))
	}
}
