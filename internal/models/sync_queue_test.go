package models

import (
	"sync"
	"testing"
)

func TestSyncQueueFIFO(t *testing.T) {
	q := NewSyncQueue()
	q.Enqueue(&SyncOp{Type: SyncInsertExpense, LocalID: "a"})
	q.Enqueue(&SyncOp{Type: SyncUpdateExpense, LocalID: "b"})
	q.Enqueue(&SyncOp{Type: SyncDeleteExpense, LocalID: "c"})

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		op := q.Dequeue()
		if op == nil || op.LocalID != want {
			t.Fatalf("dequeued %+v, want local id %q", op, want)
		}
	}
	if op := q.Dequeue(); op != nil {
		t.Fatalf("dequeue on empty queue returned %+v", op)
	}
}

func TestSyncQueuePeekDoesNotRemove(t *testing.T) {
	q := NewSyncQueue()
	if op := q.Peek(); op != nil {
		t.Fatalf("peek on empty queue returned %+v", op)
	}
	q.Enqueue(&SyncOp{Type: SyncInsertExpense, LocalID: "a"})
	if op := q.Peek(); op == nil || op.LocalID != "a" {
		t.Fatalf("peek = %+v", op)
	}
	if q.Len() != 1 {
		t.Fatalf("peek removed the op")
	}
}

func TestSyncQueueDequeueBatch(t *testing.T) {
	q := NewSyncQueue()
	for _, id := range []string{"a", "b", "c"} {
		q.Enqueue(&SyncOp{Type: SyncInsertExpense, LocalID: id})
	}

	batch := q.DequeueBatch(2)
	if len(batch) != 2 || batch[0].LocalID != "a" || batch[1].LocalID != "b" {
		t.Fatalf("batch = %+v", batch)
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}
	// Asking for more than is pending returns what is there.
	batch = q.DequeueBatch(10)
	if len(batch) != 1 || batch[0].LocalID != "c" {
		t.Fatalf("batch = %+v", batch)
	}
	if !q.IsEmpty() {
		t.Fatal("queue not empty")
	}
}

func TestSyncQueueConcurrentEnqueue(t *testing.T) {
	q := NewSyncQueue()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Enqueue(&SyncOp{Type: SyncInsertExpense})
			}
		}()
	}
	wg.Wait()

	if q.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", q.Len())
	}
	// Sequence numbers come out strictly increasing.
	var last uint64
	for op := q.Dequeue(); op != nil; op = q.Dequeue() {
		if op.Seq <= last {
			t.Fatalf("seq %d after %d", op.Seq, last)
		}
		last = op.Seq
	}
}
