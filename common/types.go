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

package common

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// CompareFn is a three-way comparator: negative when a sorts before b,
// zero when they are equivalent and positive otherwise.
type CompareFn[C any] func(a, b C) int

// Number is the set of element types whose values can be averaged.
type Number interface {
	constraints.Integer | constraints.Float
}

// Order selects the comparison direction of partition and selection.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Validate returns ErrInvalidOption for values other than Ascending and Descending.
func (o Order) Validate() error {
	if o != Ascending && o != Descending {
		return fmt.Errorf("%w: %s", ErrInvalidOption, o)
	}
	return nil
}

// Scheme selects the partitioning algorithm.
type Scheme int

const (
	// Lomuto takes the last element of the range as pivot and leaves it at
	// the returned index.
	Lomuto Scheme = iota
	// Hoare takes the first element of the range as pivot. The pivot is not
	// guaranteed to end up at the returned index.
	Hoare
)

func (s Scheme) String() string {
	switch s {
	case Lomuto:
		return "lomuto"
	case Hoare:
		return "hoare"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Validate returns ErrInvalidOption for values other than Lomuto and Hoare.
func (s Scheme) Validate() error {
	if s != Lomuto && s != Hoare {
		return fmt.Errorf("%w: %s", ErrInvalidOption, s)
	}
	return nil
}

// CompareFor returns the comparator realising order o over T.
func CompareFor[T cmp.Ordered](o Order) CompareFn[T] {
	if o == Descending {
		return func(a, b T) int {
			return cmp.Compare(b, a)
		}
	}
	return cmp.Compare[T]
}

// Reverse returns a comparator ordering elements opposite to compare.
func Reverse[T any](compare CompareFn[T]) CompareFn[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}
