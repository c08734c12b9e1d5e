package mr

import (
	"context"
	"fmt"
	"time"

	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/mr/kvmap"
)

// EmitT receives a lane's final bucket once the lane has reduced it.
type EmitT func(lane int, words, ngrams *kvmap.KVMap) error

// Lane is one worker: it maps its files, takes part in the shuffle,
// and reduces its home bucket.
type Lane struct {
	id    int
	n     int
	files []string
	fsl   *fslib.FsLib
	ex    *Exchange
	st    *LaneStat
	red   *Reducer
}

func newLane(id, n int, files []string, fsl *fslib.FsLib, ex *Exchange, st *LaneStat) *Lane {
	return &Lane{id: id, n: n, files: files, fsl: fsl, ex: ex, st: st}
}

func (l *Lane) Files() []string {
	return l.files
}

func (l *Lane) doMap() (*Mapper, error) {
	start := time.Now()
	m := NewMapper(l.fsl, l.n, l.st)
	for _, f := range l.files {
		if err := m.DoMap(f); err != nil {
			return nil, fmt.Errorf("lane %d: %w", l.id, err)
		}
	}
	l.st.Nlocal = m.Ngrams().Len()
	l.st.Map = time.Since(start)
	return m, nil
}

func (l *Lane) Work(ctx context.Context, emit EmitT) error {
	db.DPrintf(db.MR, "lane %d: start %d files", l.id, len(l.files))
	m, err := l.doMap()
	if err != nil {
		return err
	}

	start := time.Now()
	ps, err := l.ex.Shuffle(ctx, l.id, m.Words(), m.Ngrams())
	if err != nil {
		return fmt.Errorf("lane %d: shuffle: %w", l.id, err)
	}
	l.st.Shuffle = time.Since(start)

	start = time.Now()
	r := NewReducer(l.id)
	if err := r.DoReduce(ps); err != nil {
		return fmt.Errorf("lane %d: %w", l.id, err)
	}
	l.red = r
	l.st.Nbucket = r.Ngrams().Len()
	l.st.Ntotal = r.Ngrams().Total()
	l.st.Reduce = time.Since(start)

	if emit != nil {
		if err := emit(l.id, r.Words(), r.Ngrams()); err != nil {
			return fmt.Errorf("lane %d: emit: %w", l.id, err)
		}
	}
	db.DPrintf(db.MR, "lane %d: done", l.id)
	return nil
}
