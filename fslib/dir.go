package fslib

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	db "ngramwc/debug"
	"ngramwc/serr"
)

// HasExt returns a predicate matching any of exts.  A compressed file
// matches on the extension before GZEXT (e.g., "a.txt.gz" is ".txt").
func HasExt(exts ...string) func(string) bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[strings.ToLower(e)] = true
	}
	return func(ext string) bool {
		return m[strings.ToLower(ext)]
	}
}

func Ext(pn string) string {
	return filepath.Ext(strings.TrimSuffix(pn, GZEXT))
}

// To stop early, f must return true.  Returns true if stopped early.
func (fl *FsLib) ProcessDir(dir string, f func(pn string, d fs.DirEntry) (bool, error)) (bool, error) {
	stopped := false
	err := filepath.WalkDir(dir, func(pn string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		stop, err := f(pn, d)
		if err != nil {
			return err
		}
		if stop {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})
	return stopped, err
}

// isRegular reports whether d is a regular file, or a symlink to one.
// A dangling symlink is an error.
func isRegular(pn string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	st, err := os.Stat(pn)
	if err != nil {
		db.DPrintf(db.FSLIB_ERR, "Stat %v err %v", pn, err)
		return false, err
	}
	return st.Mode().IsRegular(), nil
}

// FindFiles returns the regular files under root whose extension
// satisfies pred, in lexical order.  Symlinks to regular files count;
// symlinked directories are not descended into.  Errors are
// serr.TErrEnumerate.
func (fl *FsLib) FindFiles(root string, pred func(ext string) bool) ([]string, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, serr.NewErrErrorf(serr.TErrEnumerate, root, err)
	}
	if !st.IsDir() {
		return nil, serr.NewErr(serr.TErrEnumerate, root+" not a directory")
	}
	files := make([]string, 0)
	if _, err := fl.ProcessDir(root, func(pn string, d fs.DirEntry) (bool, error) {
		if !pred(Ext(pn)) {
			return false, nil
		}
		ok, err := isRegular(pn, d)
		if err != nil {
			return false, err
		}
		if ok {
			files = append(files, pn)
		}
		return false, nil
	}); err != nil {
		return nil, serr.NewErrErrorf(serr.TErrEnumerate, root, err)
	}
	db.DPrintf(db.FSLIB, "FindFiles %v: %d files", root, len(files))
	return files, nil
}
