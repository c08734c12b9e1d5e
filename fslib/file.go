package fslib

//
// Local-filesystem access for the word counter: enumerating input
// files and reading them.
//

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/readahead"

	db "ngramwc/debug"
	"ngramwc/serr"
)

const (
	BUFSZ = 1 << 20
	NBUF  = 4
	GZEXT = ".gz"
)

type FsLib struct {
	nbuf  int
	bufsz int
}

func NewFsLib() *FsLib {
	return NewFsLibSize(NBUF, BUFSZ)
}

func NewFsLibSize(nbuf, bufsz int) *FsLib {
	return &FsLib{nbuf: nbuf, bufsz: bufsz}
}

type reader struct {
	pn   string
	file *os.File
	ra   io.ReadCloser
	rdr  io.Reader
}

func (rd *reader) Read(p []byte) (int, error) {
	n, err := rd.rdr.Read(p)
	if err != nil && err != io.EOF {
		return n, serr.NewErrErrorf(serr.TErrRead, rd.pn, err)
	}
	return n, err
}

func (rd *reader) Close() error {
	err := rd.ra.Close()
	if err1 := rd.file.Close(); err == nil {
		err = err1
	}
	return err
}

// OpenReader opens pn for reading through a read-ahead buffer.  Files
// ending in GZEXT are decompressed.  Open and read errors are
// serr.TErrRead errors.
func (fl *FsLib) OpenReader(pn string) (io.ReadCloser, error) {
	file, err := os.Open(pn)
	if err != nil {
		db.DPrintf(db.FSLIB_ERR, "Open %v err %v", pn, err)
		return nil, serr.NewErrErrorf(serr.TErrRead, pn, err)
	}
	ra, err := readahead.NewReaderSize(file, fl.nbuf, fl.bufsz)
	if err != nil {
		file.Close()
		return nil, serr.NewErrErrorf(serr.TErrRead, pn, err)
	}
	rd := &reader{pn: pn, file: file, ra: ra, rdr: ra}
	if strings.HasSuffix(pn, GZEXT) {
		zr, err := gzip.NewReader(ra)
		if err != nil {
			rd.Close()
			return nil, serr.NewErrErrorf(serr.TErrRead, pn, err)
		}
		rd.rdr = zr
	}
	db.DPrintf(db.FSLIB, "OpenReader %v", pn)
	return rd, nil
}

// GetFile returns the complete (decompressed) contents of pn.
func (fl *FsLib) GetFile(pn string) ([]byte, error) {
	rdr, err := fl.OpenReader(pn)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	return io.ReadAll(rdr)
}

// PutFile writes data to pn, replacing any existing file.
func (fl *FsLib) PutFile(pn string, data []byte) error {
	if strings.HasSuffix(pn, GZEXT) {
		file, err := os.Create(pn)
		if err != nil {
			return err
		}
		zw := gzip.NewWriter(file)
		if _, err := zw.Write(data); err != nil {
			file.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}
	return os.WriteFile(pn, data, 0644)
}
