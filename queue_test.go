package huffmantree

import (
	"errors"
	"testing"

	"github.com/chronos-tachyon/assert"
)

// checkHeap asserts the max-heap property over the whole queue.
func (q *Queue) checkHeap() {
	for i := 1; i < len(q.list); i++ {
		parent := (i - 1) / 2
		assert.Assertf(!q.list[i].outranks(q.list[parent]), "heap property violated at index %d (parent %d)", i, parent)
	}
}

func TestQueue_ExtractOrder(t *testing.T) {
	keys := []int64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	var q Queue
	for index, key := range keys {
		q.Insert(Entry{Key: key, Node: NewLeaf(Symbol('a' + index))})
		q.checkHeap()
	}
	if q.Len() != len(keys) {
		t.Fatalf("expected Len() %d, got %d", len(keys), q.Len())
	}

	type row struct {
		key    int64
		symbol Symbol
	}
	expect := []row{
		{9, 'f'},
		{6, 'h'},
		{5, 'e'},
		{5, 'i'},
		{4, 'c'},
		{3, 'a'},
		{3, 'j'},
		{2, 'g'},
		{1, 'b'},
		{1, 'd'},
	}
	for index, want := range expect {
		entry, err := q.ExtractMax()
		if err != nil {
			t.Fatalf("ExtractMax #%d failed: %v", index, err)
		}
		q.checkHeap()
		if entry.Key != want.key || entry.Node.Symbol != want.symbol {
			t.Errorf("ExtractMax #%d: expected {%d, %q}, got {%d, %q}", index, want.key, rune(want.symbol), entry.Key, rune(entry.Node.Symbol))
		}
	}
	if !q.IsEmpty() {
		t.Errorf("expected empty queue, got Len() %d", q.Len())
	}
}

func TestQueue_Interleaved(t *testing.T) {
	var q Queue
	q.Insert(Entry{Key: -5, Node: NewLeaf('a')})
	q.Insert(Entry{Key: -1, Node: NewLeaf('b')})

	entry, err := q.ExtractMax()
	if err != nil || entry.Node.Symbol != 'b' {
		t.Fatalf("expected 'b', got %v, %v", entry, err)
	}

	q.Insert(Entry{Key: -5, Node: NewLeaf('c')})
	q.Insert(Entry{Key: -7, Node: NewLeaf('d')})

	var actual []rune
	for !q.IsEmpty() {
		entry, err := q.ExtractMax()
		if err != nil {
			t.Fatalf("ExtractMax failed: %v", err)
		}
		actual = append(actual, rune(entry.Node.Symbol))
	}
	if string(actual) != "acd" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "acd", string(actual))
	}
}

func TestQueue_Underflow(t *testing.T) {
	var q Queue
	entry, err := q.ExtractMax()
	if !errors.Is(err, ErrQueueUnderflow) {
		t.Errorf("expected ErrQueueUnderflow, got %v", err)
	}
	if entry.Node != nil {
		t.Errorf("expected no node, got %v", entry.Node)
	}

	q.Insert(Entry{Key: 1, Node: NewLeaf('x')})
	if _, err := q.ExtractMax(); err != nil {
		t.Fatalf("ExtractMax failed: %v", err)
	}
	if _, err := q.ExtractMax(); !errors.Is(err, ErrQueueUnderflow) {
		t.Errorf("expected ErrQueueUnderflow after draining, got %v", err)
	}
}
