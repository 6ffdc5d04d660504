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
	"errors"
	"fmt"
)

// Errors reported by the partition, selection and median packages.
// Callers match them with errors.Is; returned errors may wrap them with detail.
var (
	ErrNullInput     = errors.New("input sequence is nil")
	ErrInvalidRange  = errors.New("range is outside the sequence")
	ErrEmptyInput    = errors.New("input sequence is empty")
	ErrOutOfRange    = errors.New("rank is outside [1, length]")
	ErrInvalidOption = errors.New("unknown option value")
)

// CheckRange validates the inclusive bounds [low, high] against a sequence
// of length n. A degenerate range (low >= high) is valid as long as low
// itself indexes the sequence.
func CheckRange(n, low, high int) error {
	if low < 0 || low >= n || high >= n {
		return fmt.Errorf("%w: [%d, %d] for length %d", ErrInvalidRange, low, high, n)
	}
	return nil
}

// CheckRank validates a 1-based rank k against a sequence of length n.
func CheckRank(n, k int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d, length %d", ErrOutOfRange, k, n)
	}
	return nil
}
