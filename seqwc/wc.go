package seqwc

//
// Sequential word and n-gram count: the single-threaded baseline the
// lane-parallel counter in mr must agree with.
//

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"

	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/mr/kvmap"
	"ngramwc/serr"
	"ngramwc/test"
	"ngramwc/wc"
)

type Result struct {
	Words  *kvmap.KVMap
	Ngrams *kvmap.KVMap
	In     uint64
	Nfile  int
}

type countReader struct {
	rdr io.Reader
	n   *uint64
}

func (cr countReader) Read(p []byte) (int, error) {
	n, err := cr.rdr.Read(p)
	*cr.n += uint64(n)
	return n, err
}

func wcFile(fsl *fslib.FsLib, pn string, n int, res *Result) error {
	rdr, err := fsl.OpenReader(pn)
	if err != nil {
		return err
	}
	defer rdr.Close()
	if _, err := wc.Wc(countReader{rdr, &res.In}, n, res.Words, res.Ngrams); err != nil {
		if serr.IsErrCode(err, serr.TErrRead) {
			return err
		}
		return serr.NewErrErrorf(serr.TErrRead, pn, err)
	}
	return nil
}

// Wc counts the files of dir matching exts, one after the other.
func Wc(fsl *fslib.FsLib, dir string, exts []string, n int) (*Result, error) {
	files, err := fsl.FindFiles(dir, fslib.HasExt(exts...))
	if err != nil {
		return nil, err
	}
	res := &Result{Words: kvmap.NewKVMap(), Ngrams: kvmap.NewKVMap()}
	start := time.Now()
	for _, f := range files {
		if err := wcFile(fsl, f, n, res); err != nil {
			return nil, err
		}
		res.Nfile++
	}
	ms := time.Since(start).Milliseconds()
	db.DPrintf(db.MR_TPT, "seqwc %s took %vms (%s)", humanize.Bytes(res.In), ms, test.TputStr(res.In, ms))
	return res, nil
}
