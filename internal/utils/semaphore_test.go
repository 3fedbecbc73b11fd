package utils

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSemaphoreBlocksAtCapacity(t *testing.T) {
	sem := NewSemaphore(2)

	sem.Acquire()
	sem.Acquire()

	var acquired atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sem.Acquire()
		acquired.Store(true)
		sem.Release()
	}()

	time.Sleep(100 * time.Millisecond)
	if acquired.Load() {
		t.Error("third Acquire should block while two permits are held")
	}

	sem.Release()
	wg.Wait()

	if !acquired.Load() {
		t.Error("Acquire should proceed after a Release")
	}
}

func TestSemaphoreMinimumCapacity(t *testing.T) {
	sem := NewSemaphore(0)

	done := make(chan struct{})
	go func() {
		sem.Acquire()
		sem.Release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("semaphore with clamped capacity deadlocked")
	}
}
