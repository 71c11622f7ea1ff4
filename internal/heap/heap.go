package heap

import "golang.org/x/exp/constraints"

// MinHeap is a binary min-heap. The zero value is an empty heap ready for
// use.
type MinHeap[T constraints.Ordered] struct {
	values []T
}

// New creates an empty MinHeap.
func New[T constraints.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{}
}

// Insert appends v and sifts it up until its parent is not larger.
func (h *MinHeap[T]) Insert(v T) {
	h.values = append(h.values, v)
	h.siftUp(len(h.values) - 1)
}

// ExtractMin removes and returns the smallest value.
// It returns the zero value and false if the heap is empty.
func (h *MinHeap[T]) ExtractMin() (T, bool) {
	var zero T
	n := len(h.values)
	if n == 0 {
		return zero, false
	}

	root := h.values[0]
	last := n - 1
	h.values[0] = h.values[last]
	h.values[last] = zero
	h.values = h.values[:last]
	if len(h.values) > 1 {
		h.siftDown(0)
	}
	return root, true
}

// GetMin returns the smallest value without removing it.
// It returns the zero value and false if the heap is empty.
func (h *MinHeap[T]) GetMin() (T, bool) {
	if len(h.values) == 0 {
		var zero T
		return zero, false
	}
	return h.values[0], true
}

// Len returns the number of values held.
func (h *MinHeap[T]) Len() int {
	return len(h.values)
}

// IsEmpty returns true if the heap holds no values.
func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.values) == 0
}

// Values returns a copy of the backing slice in heap order.
func (h *MinHeap[T]) Values() []T {
	out := make([]T, len(h.values))
	copy(out, h.values)
	return out
}

func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.values[i] < h.values[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the value at i towards the leaves. The left child is
// checked first and the right child only replaces it when strictly smaller,
// so ties go left.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.values)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.values[left] < h.values[smallest] {
			smallest = left
		}
		if right < n && h.values[right] < h.values[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}
