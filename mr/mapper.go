package mr

import (
	"io"
	"time"

	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/mr/kvmap"
	"ngramwc/serr"
	"ngramwc/wc"
)

// Mapper builds a lane's local word and n-gram tables from the lane's
// input files.
type Mapper struct {
	fsl    *fslib.FsLib
	n      int
	words  *kvmap.KVMap
	ngrams *kvmap.KVMap
	st     *LaneStat
}

func NewMapper(fsl *fslib.FsLib, n int, st *LaneStat) *Mapper {
	return &Mapper{
		fsl:    fsl,
		n:      n,
		words:  kvmap.NewKVMap(),
		ngrams: kvmap.NewKVMap(),
		st:     st,
	}
}

type countReader struct {
	rdr io.Reader
	n   uint64
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.rdr.Read(p)
	cr.n += uint64(n)
	return n, err
}

// DoMap adds the words and n-grams of pn to the local tables.  Any
// error is a serr.TErrRead error; the tables must then be discarded.
func (m *Mapper) DoMap(pn string) error {
	start := time.Now()
	rdr, err := m.fsl.OpenReader(pn)
	if err != nil {
		return err
	}
	defer rdr.Close()
	cr := &countReader{rdr: rdr}
	cnt, err := wc.Wc(cr, m.n, m.words, m.ngrams)
	if err != nil {
		db.DPrintf(db.MR_ERR, "DoMap %v err %v", pn, err)
		if serr.IsErrCode(err, serr.TErrRead) {
			return err
		}
		return serr.NewErrErrorf(serr.TErrRead, pn, err)
	}
	m.st.Nfile++
	m.st.In += cr.n
	m.st.Ntoken += cnt.Ntoken
	m.st.Nsentence += cnt.Nsentence
	db.DPrintf(db.MR, "DoMap %v: in %d tokens %d sentences %d %v", pn, cr.n, cnt.Ntoken, cnt.Nsentence, time.Since(start))
	return nil
}

func (m *Mapper) Words() *kvmap.KVMap {
	return m.words
}

func (m *Mapper) Ngrams() *kvmap.KVMap {
	return m.ngrams
}
