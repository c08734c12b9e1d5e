package mr

//
// The all-to-all exchange between lanes.  There is one slot per
// ordered pair of lanes (src, dst), self-to-self included.  A slot
// carries exactly one Partition: src writes it once, dst reads it
// once, after which the slot is dead.
//

import (
	"context"
	"fmt"
	"sync/atomic"

	db "ngramwc/debug"
	"ngramwc/mr/kvmap"
	"ngramwc/serr"
)

type slot struct {
	written atomic.Bool
	ch      chan *Partition
}

type Exchange struct {
	nlane int
	slots [][]*slot // [src][dst]
}

func NewExchange(nlane int) *Exchange {
	ex := &Exchange{nlane: nlane, slots: make([][]*slot, nlane)}
	for i := range ex.slots {
		ex.slots[i] = make([]*slot, nlane)
		for j := range ex.slots[i] {
			ex.slots[i][j] = &slot{ch: make(chan *Partition, 1)}
		}
	}
	return ex
}

func (ex *Exchange) slot(src, dst int) (*slot, error) {
	if src < 0 || src >= ex.nlane || dst < 0 || dst >= ex.nlane {
		return nil, serr.NewErr(serr.TErrExchange, fmt.Sprintf("no slot %d->%d", src, dst))
	}
	return ex.slots[src][dst], nil
}

// Put deposits p in slot p.Src->p.Dst.  It never blocks.
func (ex *Exchange) Put(p *Partition) error {
	s, err := ex.slot(p.Src, p.Dst)
	if err != nil {
		return err
	}
	if !s.written.CompareAndSwap(false, true) {
		return serr.NewErr(serr.TErrExchange, fmt.Sprintf("slot %d->%d rewritten", p.Src, p.Dst))
	}
	s.ch <- p
	close(s.ch)
	return nil
}

// Get blocks until slot src->dst has been written, or ctx is done.
func (ex *Exchange) Get(ctx context.Context, src, dst int) (*Partition, error) {
	s, err := ex.slot(src, dst)
	if err != nil {
		return nil, err
	}
	select {
	case p, ok := <-s.ch:
		if !ok {
			return nil, serr.NewErr(serr.TErrExchange, fmt.Sprintf("slot %d->%d already read", src, dst))
		}
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shuffle splits lane's local tables by home lane, deposits one
// Partition for every lane, and then collects the nlane Partitions
// homed at lane.  It returns only after every lane has deposited its
// partitions for lane.
func (ex *Exchange) Shuffle(ctx context.Context, lane int, words, ngrams *kvmap.KVMap) ([]*Partition, error) {
	ws := Split(words, ex.nlane)
	ns := Split(ngrams, ex.nlane)
	for dst := 0; dst < ex.nlane; dst++ {
		p := &Partition{Src: lane, Dst: dst, Words: ws[dst], Ngrams: ns[dst]}
		db.DPrintf(db.SHUFFLE, "lane %d: put %v", lane, p)
		if err := ex.Put(p); err != nil {
			return nil, err
		}
	}
	ps := make([]*Partition, ex.nlane)
	for src := 0; src < ex.nlane; src++ {
		p, err := ex.Get(ctx, src, lane)
		if err != nil {
			return nil, err
		}
		db.DPrintf(db.SHUFFLE, "lane %d: got %v", lane, p)
		ps[src] = p
	}
	return ps, nil
}
