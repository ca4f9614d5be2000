// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable fork-join worker pool.
// Unlike per-call goroutine spawning, a Pool is created once and reused
// across many operations, eliminating spawn overhead for the many small
// tasks a divide-and-conquer sort produces.
//
// Work is handed to a worker only when one is idle; otherwise the forking
// goroutine runs it inline. A task that waits for its children therefore
// never blocks a worker that one of those children needs, and nested
// fork-join trees of any depth complete without deadlock.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0) - 1)
//	defer pool.Close()
//
//	var wg sync.WaitGroup
//	pool.Fork(&wg, func() { sortLeft() })
//	sortRight()
//	wg.Wait()
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool that can be reused across many fork-join
// operations. Workers are spawned once at creation and reused.
//
// A nil *Pool is valid and runs every task inline on the calling goroutine.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once

	_      cpu.CacheLinePad
	closed atomic.Bool
	// forked counts tasks that were handed to a worker rather than run inline.
	forked atomic.Int64
	_      cpu.CacheLinePad
}

// workItem represents a single forked task.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of background
// workers. Workers are spawned immediately and persist until Close is called.
// If numWorkers < 0, uses GOMAXPROCS. A pool with zero workers is valid and
// runs everything inline.
func New(numWorkers int) *Pool {
	if numWorkers < 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Unbuffered: a send only succeeds when a worker is parked waiting.
		workC: make(chan workItem),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of background workers in the pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 0
	}
	return p.numWorkers
}

// Forked returns how many tasks have been executed by background workers
// since the pool was created.
func (p *Pool) Forked() int64 {
	if p == nil {
		return 0
	}
	return p.forked.Load()
}

// Close shuts down the worker pool. Tasks already handed to workers complete.
// Calling Close multiple times is safe. Close must not race with Fork.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Fork registers fn with wg and runs it on an idle worker, or inline on the
// calling goroutine when every worker is busy or the pool is closed.
// The caller joins with wg.Wait().
func (p *Pool) Fork(wg *sync.WaitGroup, fn func()) {
	wg.Add(1)

	if p != nil && !p.closed.Load() {
		select {
		case p.workC <- workItem{fn: fn, barrier: wg}:
			p.forked.Add(1)
			return
		default:
		}
	}

	fn()
	wg.Done()
}

// Do runs left and right, possibly in parallel, and returns when both
// have completed. right always runs on the calling goroutine.
func (p *Pool) Do(left, right func()) {
	var wg sync.WaitGroup
	p.Fork(&wg, left)
	right()
	wg.Wait()
}
