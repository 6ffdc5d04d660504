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

package median

import (
	"slices"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/selection"
)

// Of returns the median of arr, which need not be sorted. arr is rearranged
// in place by quickselect; opts configure that selection.
func Of[T common.Number](arr []T, opts ...selection.OptionFunc) (float64, error) {
	if arr == nil {
		return 0, common.ErrNullInput
	}
	n := len(arr)
	if n == 0 {
		return 0, common.ErrEmptyInput
	}

	upper, err := selection.KthSmallest(arr, n/2+1, opts...)
	if err != nil {
		return 0, err
	}
	if n%2 == 1 {
		return float64(upper), nil
	}
	// Selection leaves everything before the selected index no larger than it.
	lower := slices.Max(arr[:n/2])
	return (float64(lower) + float64(upper)) / 2, nil
}
