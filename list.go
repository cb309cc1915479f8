package godxf

// List is an ordered, singly linked collection of records of one type, built
// incrementally as repeated entities are decoded. Append links at the tail to
// preserve document order; traversal is forward-only via Front/Next.
//
// The List is the sole authority over record lifetime: Remove and Clear
// unlink a record (next set to nil) before handing it back, so Release can
// never observe a still-linked node.
type List struct {
	head *EntityRecord
	tail *EntityRecord
	size int
}

// NewList returns an empty collection.
func NewList() *List { return &List{} }

// Len reports the number of linked records.
func (l *List) Len() int { return l.size }

// Front returns the first record (nil when empty).
func (l *List) Front() *EntityRecord { return l.head }

// Append links the record at the tail. The record must not already belong to
// a list and must not carry a dangling next pointer.
func (l *List) Append(r *EntityRecord) error {
	if r == nil {
		return preconditionError("nil record appended to list")
	}
	if r.list != nil || r.next != nil {
		return preconditionError("record already linked")
	}
	r.list = l
	if l.tail == nil {
		l.head = r
		l.tail = r
	} else {
		l.tail.next = r
		l.tail = r
	}
	l.size++
	return nil
}

// Remove unlinks the record and clears its next pointer. The record is handed
// back to the caller ready for Release.
func (l *List) Remove(r *EntityRecord) error {
	if r == nil {
		return preconditionError("nil record removed from list")
	}
	if r.list != l {
		return preconditionError("record not linked to this list")
	}
	var prev *EntityRecord
	for cur := l.head; cur != nil; cur = cur.next {
		if cur == r {
			if prev == nil {
				l.head = cur.next
			} else {
				prev.next = cur.next
			}
			if l.tail == cur {
				l.tail = prev
			}
			cur.next = nil
			cur.list = nil
			l.size--
			return nil
		}
		prev = cur
	}
	return preconditionError("record not found in list")
}

// Clear unlinks every record in order and releases it. Each node is detached
// before Release runs, so the chain invariant holds throughout.
func (l *List) Clear() {
	cur := l.head
	l.head = nil
	l.tail = nil
	l.size = 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur.list = nil
		_ = cur.Release() // cannot fail: node is fully unlinked
		cur = next
	}
}

// Records snapshots the chain into a slice in document order. Convenience for
// callers that want range iteration; the records stay linked.
func (l *List) Records() []*EntityRecord {
	out := make([]*EntityRecord, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur)
	}
	return out
}
