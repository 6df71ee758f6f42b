package cache

// lruNode is a node in a doubly-linked LRU list. It keeps its key so the
// oldest entry can be deleted from the map.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList orders keys from most recently used (head) to least recently used
// (tail). It is not thread-safe; Cache holds the lock.
type lruList[K comparable] struct {
	head, tail *lruNode[K]
}

func newLRUList[K comparable]() *lruList[K] {
	return &lruList[K]{}
}

// PushFront adds key as the most recently used node.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.link(node)
	return node
}

// MoveToFront marks node as the most recently used.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	l.link(node)
}

// Remove takes node out of the list.
func (l *lruList[K]) Remove(node *lruNode[K]) {
	if node != nil {
		l.unlink(node)
	}
}

// RemoveOldest removes the least recently used node and returns its key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	node := l.tail
	if node == nil {
		var zero K
		return zero, false
	}
	l.unlink(node)
	return node.key, true
}

// Clear empties the list.
func (l *lruList[K]) Clear() {
	l.head, l.tail = nil, nil
}

// link inserts a detached node at the head.
func (l *lruList[K]) link(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev, node.next = nil, nil
}
