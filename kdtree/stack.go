package kdtree

// stack is a LIFO used to walk the tree without recursion, so that a tree
// degraded toward a list (many duplicates, sorted input) cannot exhaust the
// goroutine stack.
type stack[T any] struct {
	elements []T
}

func newStack[T any]() *stack[T] {
	return &stack[T]{
		elements: []T{},
	}
}

func (s *stack[T]) push(x T) {
	s.elements = append(s.elements, x)
}

// pop removes and returns the top element; ok is false once the walk has
// nothing left to visit.
func (s *stack[T]) pop() (x T, ok bool) {
	if len(s.elements) == 0 {
		return x, false
	}
	x = s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}
