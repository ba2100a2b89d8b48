package models

import (
	"container/heap"
	"sync"
)

const (
	SyncInsertExpense   = "InsertExpense"
	SyncUpdateExpense   = "UpdateExpense"
	SyncDeleteExpense   = "DeleteExpense"
	SyncUpsertFavorite  = "UpsertFavorite"
	SyncDeleteFavorite  = "DeleteFavorite"
	SyncUpsertPlanEntry = "UpsertPlanEntry"
	SyncDeletePlanEntry = "DeletePlanEntry"
	SyncSaveBudget      = "SaveBudget"
	SyncSaveProfile     = "SaveProfile"
)

// SyncOp is one pending remote mutation. Ops carry the local record id so a
// result can be reconciled back onto the optimistic state.
type SyncOp struct {
	Seq     uint64
	Type    string
	LocalID string
	Data    interface{}
}

// SyncQueue is a mutation queue drained by the sync dispatcher. Ops are
// released strictly in enqueue order, which preserves per-record FIFO issue
// order for remote writes.
type SyncQueue struct {
	ops   []*SyncOp
	mutex sync.Mutex
	seq   uint64
}

type opHeap []*SyncOp

func (h opHeap) Len() int           { return len(h) }
func (h opHeap) Less(i, j int) bool { return h[i].Seq < h[j].Seq }
func (h opHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *opHeap) Push(x interface{}) {
	*h = append(*h, x.(*SyncOp))
}

func (h *opHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewSyncQueue creates an empty SyncQueue.
func NewSyncQueue() *SyncQueue {
	return &SyncQueue{ops: make([]*SyncOp, 0)}
}

// Enqueue stamps the op with the next sequence number and adds it.
func (q *SyncQueue) Enqueue(op *SyncOp) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.seq++
	op.Seq = q.seq
	heap.Push((*opHeap)(&q.ops), op)
}

// Dequeue removes and returns the oldest pending op, or nil when empty.
func (q *SyncQueue) Dequeue() *SyncOp {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if len(q.ops) == 0 {
		return nil
	}
	return heap.Pop((*opHeap)(&q.ops)).(*SyncOp)
}

// Peek returns the oldest pending op without removing it.
func (q *SyncQueue) Peek() *SyncOp {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if len(q.ops) == 0 {
		return nil
	}
	return q.ops[0]
}

// IsEmpty returns true if no ops are pending.
func (q *SyncQueue) IsEmpty() bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return len(q.ops) == 0
}

// Len returns the number of pending ops.
func (q *SyncQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return len(q.ops)
}

// DequeueBatch removes up to maxBatchSize ops in order.
func (q *SyncQueue) DequeueBatch(maxBatchSize int) []*SyncOp {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	batchSize := min(maxBatchSize, len(q.ops))
	batch := make([]*SyncOp, 0, batchSize)

	for i := 0; i < batchSize; i++ {
		op := heap.Pop((*opHeap)(&q.ops)).(*SyncOp)
		batch = append(batch, op)
	}

	return batch
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
