package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sasha-s/go-deadlock"

	db "ngramwc/debug"
	"ngramwc/mr/kvmap"
)

const BUFSZ = 1 << 16

func LaneHeader(lane int) string {
	return fmt.Sprintf("=== lane %d ===\n", lane)
}

// Write prints one "term: count" line per entry.
func Write(wr io.Writer, es []kvmap.Entry) error {
	bw := bufio.NewWriterSize(wr, BUFSZ)
	for _, e := range es {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", e.Key, e.N); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Lanes prints lanes' tables in lane order, each under a lane header.
// Lanes call Print concurrently; each blocks until its turn.
type Lanes struct {
	wr   io.Writer
	topk int
	turn *Turn
}

func NewLanes(wr io.Writer, topk int) *Lanes {
	return &Lanes{wr: wr, topk: topk, turn: NewTurn()}
}

func (l *Lanes) Print(lane int, kvm *kvmap.KVMap) error {
	es := Top(Sort(kvm), l.topk)
	if err := l.turn.Wait(lane); err != nil {
		return err
	}
	db.DPrintf(db.REPORT, "lane %d: print %d of %d", lane, len(es), kvm.Len())
	if _, err := io.WriteString(l.wr, LaneHeader(lane)); err != nil {
		l.turn.Abort(err)
		return err
	}
	if err := Write(l.wr, es); err != nil {
		l.turn.Abort(err)
		return err
	}
	l.turn.Done(lane)
	return nil
}

// Abort releases lanes waiting for their turn.
func (l *Lanes) Abort(err error) {
	l.turn.Abort(err)
}

// Merger combines lanes' tables into one table.
type Merger struct {
	mu  deadlock.Mutex
	kvm *kvmap.KVMap
}

func NewMerger() *Merger {
	return &Merger{kvm: kvmap.NewKVMap()}
}

func (m *Merger) Add(kvm *kvmap.KVMap) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.kvm.Merge(kvm)
}

func (m *Merger) Table() *kvmap.KVMap {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.kvm
}

// Print writes the merged table, sorted, once all lanes have added
// theirs.
func (m *Merger) Print(wr io.Writer, topk int) error {
	es := Top(Sort(m.Table()), topk)
	db.DPrintf(db.REPORT, "merge: print %d", len(es))
	return Write(wr, es)
}
