package mr

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"ngramwc/config"
	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/mr/kvmap"
	"ngramwc/report"
	"ngramwc/test"
)

// WordCounter runs one job: nlane lanes over a fixed set of files.  A
// WordCounter runs once.
type WordCounter struct {
	job   *config.Job
	fsl   *fslib.FsLib
	files []string
	ex    *Exchange
	lanes []*Lane
	st    *Stats
}

// NewWordCounter validates job and enumerates the files under job.Dir.
func NewWordCounter(fsl *fslib.FsLib, job *config.Job) (*WordCounter, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	files, err := fsl.FindFiles(job.Dir, fslib.HasExt(job.Exts...))
	if err != nil {
		return nil, err
	}
	return NewWordCounterFiles(fsl, job, files)
}

// NewWordCounterFiles counts the given files instead of enumerating
// job.Dir.
func NewWordCounterFiles(fsl *fslib.FsLib, job *config.Job, files []string) (*WordCounter, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	wc := &WordCounter{
		job:   job,
		fsl:   fsl,
		files: files,
		ex:    NewExchange(job.Nlane),
		lanes: make([]*Lane, job.Nlane),
		st:    newStats(job.Nlane),
	}
	for i, fs := range Assign(files, job.Nlane) {
		wc.lanes[i] = newLane(i, job.N, fs, fsl, wc.ex, wc.st.Lanes[i])
	}
	db.DPrintf(db.MR, "NewWordCounter %v: %d files", job, len(files))
	return wc, nil
}

// Assign deals files to nlane lanes round robin: file i goes to lane
// i % nlane.
func Assign(files []string, nlane int) [][]string {
	fss := make([][]string, nlane)
	for i, f := range files {
		fss[i%nlane] = append(fss[i%nlane], f)
	}
	return fss
}

func (wc *WordCounter) Lanes() []*Lane {
	return wc.lanes
}

func (wc *WordCounter) Stats() *Stats {
	return wc.st
}

// run starts one goroutine per lane and waits for all of them.  The
// first lane error cancels the others; abort is called with it.
func (wc *WordCounter) run(ctx context.Context, emit EmitT, abort func(error)) error {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, l := range wc.lanes {
		l := l
		g.Go(func() error {
			if err := l.Work(gctx, emit); err != nil {
				db.DPrintf(db.MR_ERR, "lane %d err %v", l.id, err)
				if abort != nil {
					abort(err)
				}
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	wc.st.Elapsed = time.Since(start)
	ms := wc.st.Elapsed.Milliseconds()
	in := wc.st.In()
	db.DPrintf(db.MR_TPT, "Wc %s took %vms (%s)", humanize.Bytes(in), ms, test.TputStr(in, ms))
	return nil
}

// Compute counts without printing; the per-lane buckets are then
// available through Bucket and Table.
func (wc *WordCounter) Compute(ctx context.Context) error {
	return wc.run(ctx, nil, nil)
}

// Run counts and writes the report to wr, in the job's mode.  Nothing
// is written if any lane fails before the shuffle completes.
func (wc *WordCounter) Run(ctx context.Context, wr io.Writer) error {
	switch wc.job.Mode {
	case config.MODE_LANES:
		lanes := report.NewLanes(wr, wc.job.TopK)
		return wc.run(ctx, func(lane int, words, ngrams *kvmap.KVMap) error {
			return lanes.Print(lane, wc.pick(words, ngrams))
		}, lanes.Abort)
	default:
		m := report.NewMerger()
		if err := wc.run(ctx, func(lane int, words, ngrams *kvmap.KVMap) error {
			m.Add(wc.pick(words, ngrams))
			return nil
		}, nil); err != nil {
			return err
		}
		return m.Print(wr, wc.job.TopK)
	}
}

func (wc *WordCounter) pick(words, ngrams *kvmap.KVMap) *kvmap.KVMap {
	if wc.job.Table == config.TABLE_WORD {
		return words
	}
	return ngrams
}

// Bucket returns lane's final tables; nil before the lane has reduced.
func (wc *WordCounter) Bucket(lane int) (words, ngrams *kvmap.KVMap) {
	r := wc.lanes[lane].red
	if r == nil {
		return nil, nil
	}
	return r.Words(), r.Ngrams()
}

// Table merges the buckets of all lanes into the job's table.
func (wc *WordCounter) Table() *kvmap.KVMap {
	kvm := kvmap.NewKVMap()
	for i := range wc.lanes {
		w, n := wc.Bucket(i)
		if w != nil {
			kvm.Merge(wc.pick(w, n))
		}
	}
	return kvm
}
