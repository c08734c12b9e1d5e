package mr

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	"ngramwc/test"
)

// LaneStat is written only by its lane.
type LaneStat struct {
	Lane      int
	Nfile     int
	In        uint64 // bytes read
	Ntoken    int
	Nsentence int
	Nlocal    int    // distinct n-grams before the shuffle
	Nbucket   int    // distinct n-grams in the home bucket
	Ntotal    uint64 // n-gram occurrences in the home bucket
	Map       time.Duration
	Shuffle   time.Duration
	Reduce    time.Duration
}

type Stats struct {
	Lanes   []*LaneStat
	Elapsed time.Duration
}

func newStats(nlane int) *Stats {
	st := &Stats{Lanes: make([]*LaneStat, nlane)}
	for i := range st.Lanes {
		st.Lanes[i] = &LaneStat{Lane: i}
	}
	return st
}

func (st *Stats) In() uint64 {
	n := uint64(0)
	for _, l := range st.Lanes {
		n += l.In
	}
	return n
}

func (st *Stats) Nfile() int {
	n := 0
	for _, l := range st.Lanes {
		n += l.Nfile
	}
	return n
}

// Balance summarizes how evenly the shuffle spread distinct n-grams
// over lanes: mean and standard deviation of bucket sizes, and the
// largest bucket relative to the mean.
func (st *Stats) Balance() (mean, stddev, skew float64, err error) {
	data := make(stats.Float64Data, 0, len(st.Lanes))
	for _, l := range st.Lanes {
		data = append(data, float64(l.Nbucket))
	}
	if mean, err = stats.Mean(data); err != nil {
		return 0, 0, 0, err
	}
	if stddev, err = stats.StandardDeviation(data); err != nil {
		return 0, 0, 0, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return 0, 0, 0, err
	}
	if mean > 0 {
		skew = max / mean
	}
	return mean, stddev, skew, nil
}

func (st *Stats) Print(wr io.Writer) error {
	ms := st.Elapsed.Milliseconds()
	fmt.Fprintf(wr, "=== STATS: nlane %d files %d in %s %vms (%s)\n", len(st.Lanes), st.Nfile(), humanize.Bytes(st.In()), ms, test.TputStr(st.In(), ms))
	for _, l := range st.Lanes {
		fmt.Fprintf(wr, "lane %d: files %d in %s tokens %s sentences %s local %s bucket %s map %v shuffle %v reduce %v\n",
			l.Lane, l.Nfile, humanize.Bytes(l.In), humanize.Comma(int64(l.Ntoken)), humanize.Comma(int64(l.Nsentence)),
			humanize.Comma(int64(l.Nlocal)), humanize.Comma(int64(l.Nbucket)), l.Map, l.Shuffle, l.Reduce)
	}
	mean, stddev, skew, err := st.Balance()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(wr, "=== bucket balance: mean %.1f stddev %.1f max/mean %.2f\n", mean, stddev, skew)
	return err
}
