package huffmantree

// Entry is one element of a Queue.  Entries with a larger Key are extracted
// first.
type Entry struct {
	Key  int64
	Node *Node
}

// Queue is a binary max-heap of Entry values, stored as a dense slice where
// the children of index i live at 2i+1 and 2i+2.
//
// Entries with equal keys are extracted in insertion order, so the order of
// extraction never depends on the heap's internal layout.
//
// The zero value is an empty queue, ready to use.
//
type Queue struct {
	list    []queueItem
	nextSeq uint64
}

type queueItem struct {
	Entry
	seq uint64
}

// outranks returns true iff a must be extracted before b.
func (a queueItem) outranks(b queueItem) bool {
	if a.Key != b.Key {
		return a.Key > b.Key
	}
	return a.seq < b.seq
}

// Grow reserves space for n more entries.
func (q *Queue) Grow(n int) {
	if free := cap(q.list) - len(q.list); free < n {
		list := make([]queueItem, len(q.list), len(q.list)+n)
		copy(list, q.list)
		q.list = list
	}
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	return len(q.list)
}

// IsEmpty returns true iff the queue holds no entries.
func (q *Queue) IsEmpty() bool {
	return len(q.list) == 0
}

// Insert adds an entry to the queue.  O(log n).
func (q *Queue) Insert(entry Entry) {
	q.list = append(q.list, queueItem{Entry: entry, seq: q.nextSeq})
	q.nextSeq++
	q.siftUp(len(q.list) - 1)
}

// ExtractMax removes and returns the highest-ranked entry.  O(log n).
//
// Extracting from an empty queue returns ErrQueueUnderflow.
//
func (q *Queue) ExtractMax() (Entry, error) {
	n := len(q.list)
	if n == 0 {
		return Entry{}, ErrQueueUnderflow
	}

	top := q.list[0]
	last := n - 1
	q.list[0] = q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	if last > 0 {
		q.siftDown(0)
	}
	return top.Entry, nil
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.list[i].outranks(q.list[parent]) {
			break
		}
		q.list[i], q.list[parent] = q.list[parent], q.list[i]
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.list)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}

		// Prefer the left child unless the right child strictly outranks it.
		child := left
		if right := left + 1; right < n && q.list[right].outranks(q.list[left]) {
			child = right
		}

		if !q.list[child].outranks(q.list[i]) {
			break
		}
		q.list[i], q.list[child] = q.list[child], q.list[i]
		i = child
	}
}
