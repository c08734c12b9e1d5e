package mr

import (
	"fmt"

	db "ngramwc/debug"
	"ngramwc/mr/kvmap"
	"ngramwc/serr"
)

// Reducer sums the partitions homed at one lane into that lane's
// final tables.  No other lane holds these terms, so no locking.
type Reducer struct {
	lane   int
	words  *kvmap.KVMap
	ngrams *kvmap.KVMap
}

func NewReducer(lane int) *Reducer {
	return &Reducer{
		lane:   lane,
		words:  kvmap.NewKVMap(),
		ngrams: kvmap.NewKVMap(),
	}
}

func (r *Reducer) DoReduce(ps []*Partition) error {
	for _, p := range ps {
		if p.Dst != r.lane {
			return serr.NewErr(serr.TErrExchange, fmt.Sprintf("lane %d got partition for %d", r.lane, p.Dst))
		}
		r.words.Merge(p.Words)
		r.ngrams.Merge(p.Ngrams)
	}
	db.DPrintf(db.MR, "lane %d: reduce %d partitions: words %v ngrams %v", r.lane, len(ps), r.words, r.ngrams)
	return nil
}

func (r *Reducer) Words() *kvmap.KVMap {
	return r.words
}

func (r *Reducer) Ngrams() *kvmap.KVMap {
	return r.ngrams
}
