package ecs

import (
	"container/heap"
	"time"
)

// Task is a deferred piece of world logic. Tasks only ever run on the frame
// thread, from the task system.
type Task struct {
	At   time.Duration
	Name string
	Run  func(w *World)

	seq uint64
}

// Tasks is a time-ordered queue. Tasks due at the same instant run in the
// order they were scheduled.
type Tasks struct {
	h   taskHeap
	seq uint64
}

func (t *Tasks) push(task *Task) {
	t.seq++
	task.seq = t.seq
	heap.Push(&t.h, task)
}

// Len is the number of tasks not yet run.
func (t *Tasks) Len() int {
	if t == nil {
		return 0
	}
	return len(t.h)
}

func (t *Tasks) popDue(now time.Duration) *Task {
	if len(t.h) == 0 || t.h[0].At > now {
		return nil
	}
	return heap.Pop(&t.h).(*Task)
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
