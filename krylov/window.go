// SPDX-License-Identifier: MIT

package krylov

// window stores Lanczos vectors. Two memory modes:
//   - full history (capacity 0): every vector is kept, enabling
//     re-orthogonalization and direct Ritz vector assembly. Memory O(m·n).
//   - rolling (capacity c > 0): only the last c vectors live in a ring.
//     Memory O(c·n); Ritz vectors need a replay of the recurrence.
type window struct {
	n        int
	capacity int
	buf      [][]complex128
	count    int // vectors pushed so far
}

func newWindow(n, capacity int) *window {
	w := &window{n: n, capacity: capacity}
	if capacity > 0 {
		w.buf = make([][]complex128, capacity)
		for i := range w.buf {
			w.buf[i] = make([]complex128, n)
		}
	}

	return w
}

// push stores a copy of v as vector number count.
func (w *window) push(v []complex128) {
	if w.capacity == 0 {
		w.buf = append(w.buf, append([]complex128(nil), v...))
	} else {
		copy(w.buf[w.count%w.capacity], v)
	}
	w.count++
}

// holds reports whether vector k is still stored.
func (w *window) holds(k int) bool {
	if k < 0 || k >= w.count {
		return false
	}

	return w.capacity == 0 || k >= w.count-w.capacity
}

// at returns vector k (aliasing storage) or nil when evicted.
func (w *window) at(k int) []complex128 {
	if !w.holds(k) {
		return nil
	}
	if w.capacity == 0 {
		return w.buf[k]
	}

	return w.buf[k%w.capacity]
}

// history returns the stored vectors, oldest first.
func (w *window) history() [][]complex128 {
	if w.capacity == 0 {
		return w.buf
	}
	first := max(0, w.count-w.capacity)
	out := make([][]complex128, 0, w.count-first)
	for k := first; k < w.count; k++ {
		out = append(out, w.buf[k%w.capacity])
	}

	return out
}
