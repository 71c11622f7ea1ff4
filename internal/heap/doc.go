// Package heap provides an array-backed binary min-heap over any ordered
// type.
//
// The heap keeps its values in a slice where index 0 is the root and the
// children of index i live at 2i+1 and 2i+2. For every such pair,
// value[i] <= value[child].
//
//	h := heap.New[int]()
//	for _, v := range []int{5, 3, 8, 1, 2} {
//	    h.Insert(v)
//	}
//	min, ok := h.ExtractMin() // 1, true
//	min, ok = h.GetMin()      // 2, true
//
// Sift-down prefers the left child when both children are equal and smaller
// than the parent. Equal values are not otherwise kept stable.
package heap
