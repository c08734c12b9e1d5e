package report

import (
	"sync"

	"github.com/sasha-s/go-deadlock"
)

//
// Turn serializes lanes in lane-id order: lane i may run its turn only
// after lanes 0..i-1 have called Done.
//

type Turn struct {
	mu   deadlock.Mutex
	cond *sync.Cond
	next int
	err  error
}

func NewTurn() *Turn {
	t := &Turn{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// Wait blocks until it is lane's turn, or until the turn is aborted.
func (t *Turn) Wait(lane int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.next != lane && t.err == nil {
		t.cond.Wait()
	}
	return t.err
}

// Done passes the turn from lane to lane+1.
func (t *Turn) Done(lane int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.next == lane {
		t.next = lane + 1
	}
	t.cond.Broadcast()
}

// Abort releases all waiters with err.  The first error sticks.
func (t *Turn) Abort(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err == nil {
		t.err = err
	}
	t.cond.Broadcast()
}

func (t *Turn) Next() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.next
}
