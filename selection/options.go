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
	"fmt"

	"github.com/apache/orderstat-go/common"
	"github.com/apache/orderstat-go/internal"
)

// PivotPolicy decides which element of the working range becomes the pivot.
type PivotPolicy int

const (
	// PivotFixed keeps the scheme's own pivot: the first element for Hoare,
	// the last for Lomuto. Sorted or adversarial input costs O(n^2).
	PivotFixed PivotPolicy = iota
	// PivotMedianOfThree uses the median of the first, middle and last
	// elements.
	PivotMedianOfThree
	// PivotHashed uses a seeded pseudo-random position, deterministic for a
	// given seed and input.
	PivotHashed
)

func (p PivotPolicy) String() string {
	switch p {
	case PivotFixed:
		return "fixed"
	case PivotMedianOfThree:
		return "median-of-three"
	case PivotHashed:
		return "hashed"
	default:
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
}

type selectOptions struct {
	scheme common.Scheme
	pivot  PivotPolicy
	seed   uint64
}

type OptionFunc func(*selectOptions)

// WithScheme sets the partition scheme driving the selection (defaults to Lomuto).
func WithScheme(scheme common.Scheme) OptionFunc {
	return func(opts *selectOptions) {
		opts.scheme = scheme
	}
}

// WithPivotPolicy sets how pivots are chosen (defaults to PivotFixed).
func WithPivotPolicy(pivot PivotPolicy) OptionFunc {
	return func(opts *selectOptions) {
		opts.pivot = pivot
	}
}

// WithSeed sets the seed used by PivotHashed.
func WithSeed(seed uint64) OptionFunc {
	return func(opts *selectOptions) {
		opts.seed = seed
	}
}

func newSelectOptions(opts ...OptionFunc) (*selectOptions, error) {
	options := &selectOptions{
		scheme: common.Lomuto,
		pivot:  PivotFixed,
		seed:   internal.DEFAULT_PIVOT_SEED,
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.scheme.Validate(); err != nil {
		return nil, err
	}
	if options.pivot < PivotFixed || options.pivot > PivotHashed {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidOption, options.pivot)
	}
	return options, nil
}

func pivotFunc[T any](options *selectOptions) internal.PivotFunc[T] {
	switch options.pivot {
	case PivotMedianOfThree:
		return internal.MedianOfThreePivot[T]
	case PivotHashed:
		return internal.HashedPivot[T](options.seed)
	default:
		return nil
	}
}
