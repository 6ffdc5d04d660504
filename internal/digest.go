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
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/apache/orderstat-go/common"
)

// MultisetDigest returns an order-independent fingerprint of the values in
// arr. Two slices holding the same multiset of values share a digest, so it
// detects an in-place rearrangement that lost or duplicated an element.
func MultisetDigest[T common.Number](arr []T) uint64 {
	var buf [8]byte
	sum := uint64(len(arr))
	for _, v := range arr {
		binary.LittleEndian.PutUint64(buf[:], numberBits(v))
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}

func numberBits[T common.Number](v T) uint64 {
	switch x := any(v).(type) {
	case float64:
		return math.Float64bits(x)
	case float32:
		return uint64(math.Float32bits(x))
	}
	return uint64(int64(v))
}
