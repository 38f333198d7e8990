package qptrie

import "bytes"

// node is either a leaf or a branch. Go has no sum types, so this is an
// unexported interface with exactly two implementations and exhaustive
// type switches at every use site.
type node[K Splittable[K], V any] interface {
	isNode()
}

type leaf[K Splittable[K], V any] struct {
	key K
	val V
}

func (*leaf[K, V]) isNode() {}

type branch[K Splittable[K], V any] struct {
	choice  int
	entries sparse[node[K, V]]
}

func (*branch[K, V]) isNode() {}

// getNode looks up key starting from n, returning the leaf that holds it.
func getNode[K Splittable[K], V any](n node[K, V], key []byte) (*leaf[K, V], bool) {
	switch t := n.(type) {
	case *leaf[K, V]:
		if bytes.Equal(t.key.Bytes(), key) {
			return t, true
		}

		return nil, false

	case *branch[K, V]:
		child, ok := t.entries.get(slotOf(t.choice, key))
		if !ok {
			return nil, false
		}

		return getNode[K, V](child, key)
	}

	panic("qptrie: node of unknown type")
}

// exemplar descends toward key, using getOrAny at every branch, and
// returns whichever leaf it lands on. For a non-empty trie this never
// fails; the returned leaf is the one compared against to decide where
// key would be grafted.
func exemplar[K Splittable[K], V any](n node[K, V], key []byte) *leaf[K, V] {
	switch t := n.(type) {
	case *leaf[K, V]:
		return t

	case *branch[K, V]:
		child := t.entries.getOrAny(slotOf(t.choice, key))
		return exemplar[K, V](*child, key)
	}

	panic("qptrie: node of unknown type")
}

// getPrefix returns the subtree holding exactly the keys starting with
// prefix, or false if no such key exists.
func getPrefix[K Splittable[K], V any](n node[K, V], prefix []byte) (node[K, V], bool) {
	ex := exemplar[K, V](n, prefix)
	if !bytes.HasPrefix(ex.key.Bytes(), prefix) {
		return nil, false
	}

	return getPrefixValidated[K, V](n, prefix), true
}

// getPrefixValidated descends to the highest node wholly contained in the
// prefix region. Precondition: some leaf below n starts with prefix.
func getPrefixValidated[K Splittable[K], V any](n node[K, V], prefix []byte) node[K, V] {
	br, ok := n.(*branch[K, V])
	if !ok || br.choice >= 2*len(prefix) {
		return n
	}

	child, _ := br.entries.get(slotOf(br.choice, prefix))
	return getPrefixValidated[K, V](child, prefix)
}

// insertLeaf places lf into br at its natural slot and returns it.
func insertLeaf[K Splittable[K], V any](br *branch[K, V], lf *leaf[K, V]) *leaf[K, V] {
	slot := slotOf(br.choice, lf.key.Bytes())
	br.entries.insert(slot, node[K, V](lf))

	return lf
}

// insertInto inserts key/val under *np, returning the value it replaced
// if key was already present.
func insertInto[K Splittable[K], V any](np *node[K, V], key K, val V) (old V, had bool) {
	switch cur := (*np).(type) {
	case *leaf[K, V]:
		if bytes.Equal(cur.key.Bytes(), key.Bytes()) {
			old = cur.val
			cur.val = val

			return old, true
		}

		pos, _ := firstMismatch(cur.key.Bytes(), key.Bytes())
		br := &branch[K, V]{choice: pos}
		*np = br
		insertLeaf(br, cur)
		insertLeaf(br, &leaf[K, V]{key: key, val: val})

		return old, false

	case *branch[K, V]:
		ex := exemplar[K, V](cur, key.Bytes())

		slot, pos, mismatched := firstMismatchSlot(ex.key.Bytes(), key.Bytes())
		if !mismatched {
			old = ex.val
			ex.val = val

			return old, true
		}

		insertWithGraftPoint[K, V](np, pos, slot, key, val)

		return old, false
	}

	panic("qptrie: node of unknown type")
}

// insertWithGraftPoint splices a new leaf for key/val into the trie
// rooted at *np, maintaining choice-point monotonicity: a branch whose
// own choice is <= graft is descended into; anything else (a leaf, or a
// branch whose choice is > graft) is displaced below a freshly created
// branch at choice point graft.
func insertWithGraftPoint[K Splittable[K], V any](np *node[K, V], graft int, graftSlot uint8, key K, val V) *leaf[K, V] {
	switch cur := (*np).(type) {
	case *branch[K, V]:
		if cur.choice <= graft {
			slot := slotOf(cur.choice, key.Bytes())
			if child := cur.entries.getPtr(slot); child != nil {
				return insertWithGraftPoint[K, V](child, graft, graftSlot, key, val)
			}

			return insertLeaf(cur, &leaf[K, V]{key: key, val: val})
		}

		grafted := &branch[K, V]{choice: graft}
		*np = grafted
		grafted.entries.insert(graftSlot, node[K, V](cur))

		return insertLeaf(grafted, &leaf[K, V]{key: key, val: val})

	case *leaf[K, V]:
		grafted := &branch[K, V]{choice: graft}
		*np = grafted
		insertLeaf(grafted, cur)

		return insertLeaf(grafted, &leaf[K, V]{key: key, val: val})
	}

	panic("qptrie: node of unknown type")
}

// remove deletes key from the trie rooted at *root, returning the removed
// leaf. *root may be nil.
func remove[K Splittable[K], V any](root *node[K, V], key []byte) (*leaf[K, V], bool) {
	if *root == nil {
		return nil, false
	}

	if lf, ok := (*root).(*leaf[K, V]); ok {
		if bytes.Equal(lf.key.Bytes(), key) {
			*root = nil
			return lf, true
		}

		return nil, false
	}

	return removeValidated[K, V](root, key)
}

// removeValidated deletes key from the branch at *np, collapsing it into
// its sole remaining child if the removal leaves it singleton.
// Precondition: *np is a branch.
func removeValidated[K Splittable[K], V any](np *node[K, V], key []byte) (*leaf[K, V], bool) {
	br, ok := (*np).(*branch[K, V])
	if !ok {
		panic("qptrie: removeValidated called on a non-branch node")
	}

	slot := slotOf(br.choice, key)

	child, ok := br.entries.get(slot)
	if !ok {
		return nil, false
	}

	switch c := child.(type) {
	case *leaf[K, V]:
		if !bytes.Equal(c.key.Bytes(), key) {
			return nil, false
		}

		br.entries.remove(slot)
		if br.entries.len() == 1 {
			*np = br.entries.clearLast()
		}

		return c, true

	case *branch[K, V]:
		childPtr := br.entries.getPtr(slot)
		return removeValidated[K, V](childPtr, key)
	}

	panic("qptrie: node of unknown type")
}

// removePrefix excises the whole subtree of keys starting with prefix
// from the trie rooted at *root, returning its root node.
func removePrefix[K Splittable[K], V any](root *node[K, V], prefix []byte) (node[K, V], bool) {
	if *root == nil {
		return nil, false
	}

	switch n := (*root).(type) {
	case *leaf[K, V]:
		if !bytes.HasPrefix(n.key.Bytes(), prefix) {
			return nil, false
		}

		excised := *root
		*root = nil

		return excised, true

	case *branch[K, V]:
		ex := exemplar[K, V](n, prefix)
		if !bytes.HasPrefix(ex.key.Bytes(), prefix) {
			return nil, false
		}

		if n.choice >= 2*len(prefix) {
			excised := *root
			*root = nil

			return excised, true
		}

		return removePrefixValidated[K, V](root, prefix)
	}

	panic("qptrie: node of unknown type")
}

// removePrefixValidated excises the subtree under *np holding the keys
// that start with prefix. Precondition: *np is a branch whose exemplar
// for prefix starts with prefix.
func removePrefixValidated[K Splittable[K], V any](np *node[K, V], prefix []byte) (node[K, V], bool) {
	br, ok := (*np).(*branch[K, V])
	if !ok {
		panic("qptrie: removePrefixValidated called on a non-branch node")
	}

	slot := slotOf(br.choice, prefix)

	child, ok := br.entries.get(slot)
	if !ok {
		return nil, false
	}

	switch c := child.(type) {
	case *leaf[K, V]:
		if !bytes.HasPrefix(c.key.Bytes(), prefix) {
			return nil, false
		}

	case *branch[K, V]:
		if c.choice < 2*len(prefix) {
			childPtr := br.entries.getPtr(slot)
			return removePrefixValidated[K, V](childPtr, prefix)
		}
	}

	excised := br.entries.remove(slot)
	if br.entries.len() == 1 {
		*np = br.entries.clearLast()
	}

	return excised, true
}

// lcp returns the longest prefix of key that is also a prefix of some key
// already in the trie rooted at n.
func lcp[K Splittable[K], V any](n node[K, V], key []byte) K {
	ex := exemplar[K, V](n, key)

	pos, mismatched := firstMismatch(ex.key.Bytes(), key)

	bytePos := pos / 2
	if !mismatched {
		bytePos = len(ex.key.Bytes())
	}

	return ex.key.FindBreak(bytePos)
}

// countNode counts the leaves reachable from n.
func countNode[K Splittable[K], V any](n node[K, V]) int {
	switch t := n.(type) {
	case *leaf[K, V]:
		return 1

	case *branch[K, V]:
		c := 0
		for _, child := range t.entries.entries {
			c += countNode[K, V](child)
		}

		return c
	}

	return 0
}
