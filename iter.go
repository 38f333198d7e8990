package qptrie

// nodeIter is the stack-based depth-first walker shared by Iterator,
// ReverseIterator, and MutIterator. Pushing a branch's children in
// descending slot order and popping the stack yields ascending order;
// pushing in ascending order and popping yields descending order.
type nodeIter[K Splittable[K], V any] struct {
	stack   []node[K, V]
	reverse bool
}

func newNodeIter[K Splittable[K], V any](root node[K, V], reverse bool) nodeIter[K, V] {
	ni := nodeIter[K, V]{reverse: reverse}
	if root != nil {
		ni.stack = append(ni.stack, root)
	}

	return ni
}

func (ni *nodeIter[K, V]) next() (*leaf[K, V], bool) {
	for len(ni.stack) > 0 {
		n := ni.stack[len(ni.stack)-1]
		ni.stack = ni.stack[:len(ni.stack)-1]

		switch t := n.(type) {
		case *leaf[K, V]:
			return t, true

		case *branch[K, V]:
			entries := t.entries.entries
			if ni.reverse {
				ni.stack = append(ni.stack, entries...)
			} else {
				for i := len(entries) - 1; i >= 0; i-- {
					ni.stack = append(ni.stack, entries[i])
				}
			}
		}
	}

	return nil, false
}

// Iterator visits every entry of a trie exactly once, in ascending slot
// (depth-first, forward) order.
type Iterator[K Splittable[K], V any] struct {
	ni nodeIter[K, V]
}

func newIterator[K Splittable[K], V any](root node[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{ni: newNodeIter[K, V](root, false)}
}

// Next returns the next key/value pair, or ok=false once exhausted.
func (it *Iterator[K, V]) Next() (key K, val V, ok bool) {
	lf, ok := it.ni.next()
	if !ok {
		return key, val, false
	}

	return lf.key, lf.val, true
}

// ReverseIterator visits every entry of a trie exactly once, in
// descending slot order.
type ReverseIterator[K Splittable[K], V any] struct {
	ni nodeIter[K, V]
}

func newReverseIterator[K Splittable[K], V any](root node[K, V]) *ReverseIterator[K, V] {
	return &ReverseIterator[K, V]{ni: newNodeIter[K, V](root, true)}
}

func (it *ReverseIterator[K, V]) Next() (key K, val V, ok bool) {
	lf, ok := it.ni.next()
	if !ok {
		return key, val, false
	}

	return lf.key, lf.val, true
}

// MutIterator visits every entry of a trie exactly once, in ascending
// slot order, handing out a pointer to each value so callers can mutate
// it in place without a second lookup.
type MutIterator[K Splittable[K], V any] struct {
	ni nodeIter[K, V]
}

func newMutIterator[K Splittable[K], V any](root node[K, V]) *MutIterator[K, V] {
	return &MutIterator[K, V]{ni: newNodeIter[K, V](root, false)}
}

func (it *MutIterator[K, V]) Next() (key K, val *V, ok bool) {
	lf, ok := it.ni.next()
	if !ok {
		return key, nil, false
	}

	return lf.key, &lf.val, true
}
