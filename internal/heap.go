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

import "github.com/apache/orderstat-go/common"

// BoundedHeap retains the limit elements that order first under compare.
// The root is the last of the retained elements, so once the heap is full it
// holds the limit-th order statistic of everything pushed so far.
type BoundedHeap[T any] struct {
	items   []T
	limit   int
	compare common.CompareFn[T]
}

func NewBoundedHeap[T any](limit int, compare common.CompareFn[T]) *BoundedHeap[T] {
	return &BoundedHeap[T]{
		items:   make([]T, 0, limit),
		limit:   limit,
		compare: compare,
	}
}

func (h *BoundedHeap[T]) Len() int {
	return len(h.items)
}

// Peek returns the root. The heap must not be empty.
func (h *BoundedHeap[T]) Peek() T {
	return h.items[0]
}

// Push offers v to the heap. When the heap is full v replaces the root only
// if it orders strictly before it.
func (h *BoundedHeap[T]) Push(v T) {
	if len(h.items) < h.limit {
		h.items = append(h.items, v)
		h.siftUp(len(h.items) - 1)
		return
	}
	if h.limit == 0 || h.compare(v, h.items[0]) >= 0 {
		return
	}
	h.items[0] = v
	h.siftDown(0)
}

func (h *BoundedHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *BoundedHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.compare(h.items[left], h.items[largest]) > 0 {
			largest = left
		}
		if right < n && h.compare(h.items[right], h.items[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
