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

package partition

import (
	"cmp"

	"github.com/apache/orderstat-go/common"
)

// ThreeWay performs a Dutch national flag partition of arr[low..high]
// around v = arr[low]. On return arr[low..lt-1] orders strictly before v,
// arr[lt..gt] equals v and arr[gt+1..high] orders strictly after v.
// For a degenerate range it returns (low, low).
func ThreeWay[T cmp.Ordered](arr []T, low int, high int, order common.Order) (lt int, gt int, err error) {
	if err = order.Validate(); err != nil {
		return 0, 0, err
	}
	if err = validate(arr, low, high); err != nil {
		return 0, 0, err
	}
	if low >= high {
		return low, low, nil
	}

	compare := common.CompareFor[T](order)
	v := arr[low]
	lt, gt = low, high
	i := low
	for i <= gt {
		switch c := compare(arr[i], v); {
		case c < 0:
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case c > 0:
			arr[i], arr[gt] = arr[gt], arr[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt, nil
}
