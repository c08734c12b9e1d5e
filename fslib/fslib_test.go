package fslib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ngramwc/fslib"
	"ngramwc/serr"
)

func mkTree(t *testing.T) string {
	dir := t.TempDir()
	fsl := fslib.NewFsLib()
	assert.Nil(t, os.MkdirAll(filepath.Join(dir, "b", "c"), 0777))
	for pn, s := range map[string]string{
		"a.txt":       "alpha",
		"b/x.TXT":     "bravo",
		"b/c/y.txt":   "charlie",
		"b/c/z.md":    "delta",
		"b/w.txt.gz":  "echo echo",
		"b/notes.csv": "foxtrot",
	} {
		err := fsl.PutFile(filepath.Join(dir, pn), []byte(s))
		assert.Nil(t, err, "PutFile %v", pn)
	}
	return dir
}

func TestFindFiles(t *testing.T) {
	dir := mkTree(t)
	fsl := fslib.NewFsLib()
	files, err := fsl.FindFiles(dir, fslib.HasExt(".txt"))
	assert.Nil(t, err)
	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		assert.Nil(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"a.txt", "b/c/y.txt", "b/w.txt.gz", "b/x.TXT"}, rel)
}

func TestFindFilesSymlink(t *testing.T) {
	dir := mkTree(t)
	other := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(other, "v.txt"), []byte("victor"), 0644))
	assert.Nil(t, os.Symlink(filepath.Join(other, "v.txt"), filepath.Join(dir, "link.txt")))
	assert.Nil(t, os.Symlink(other, filepath.Join(dir, "linkdir.txt")))
	fsl := fslib.NewFsLib()
	files, err := fsl.FindFiles(dir, fslib.HasExt(".txt"))
	assert.Nil(t, err)
	assert.Contains(t, files, filepath.Join(dir, "link.txt"))
	assert.NotContains(t, files, filepath.Join(dir, "linkdir.txt"))
	assert.Equal(t, 5, len(files))
	b, err := fsl.GetFile(filepath.Join(dir, "link.txt"))
	assert.Nil(t, err)
	assert.Equal(t, "victor", string(b))

	assert.Nil(t, os.Symlink(filepath.Join(other, "gone.txt"), filepath.Join(dir, "dangling.txt")))
	_, err = fsl.FindFiles(dir, fslib.HasExt(".txt"))
	assert.True(t, serr.IsErrCode(err, serr.TErrEnumerate), "err %v", err)
}

func TestFindFilesMissing(t *testing.T) {
	fsl := fslib.NewFsLib()
	_, err := fsl.FindFiles(filepath.Join(t.TempDir(), "nope"), fslib.HasExt(".txt"))
	assert.NotNil(t, err)
	assert.True(t, serr.IsErrCode(err, serr.TErrEnumerate), "err %v", err)

	f := filepath.Join(t.TempDir(), "f.txt")
	assert.Nil(t, os.WriteFile(f, []byte("x"), 0644))
	_, err = fsl.FindFiles(f, fslib.HasExt(".txt"))
	assert.True(t, serr.IsErrCode(err, serr.TErrEnumerate), "err %v", err)
}

func TestGetFile(t *testing.T) {
	dir := mkTree(t)
	fsl := fslib.NewFsLibSize(2, 4)
	b, err := fsl.GetFile(filepath.Join(dir, "b", "c", "y.txt"))
	assert.Nil(t, err)
	assert.Equal(t, "charlie", string(b))
	b, err = fsl.GetFile(filepath.Join(dir, "b", "w.txt.gz"))
	assert.Nil(t, err)
	assert.Equal(t, "echo echo", string(b))
}

func TestLargeFile(t *testing.T) {
	pn := filepath.Join(t.TempDir(), "big.txt")
	s := strings.Repeat("abcdefghij", 1<<18)
	fsl := fslib.NewFsLibSize(4, 1<<12)
	assert.Nil(t, fsl.PutFile(pn, []byte(s)))
	b, err := fsl.GetFile(pn)
	assert.Nil(t, err)
	assert.Equal(t, len(s), len(b))
	assert.Equal(t, s, string(b))
}

func TestOpenMissing(t *testing.T) {
	fsl := fslib.NewFsLib()
	_, err := fsl.OpenReader(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, serr.IsErrCode(err, serr.TErrRead), "err %v", err)
	assert.True(t, os.IsNotExist(serr.NewErrError(err).Unwrap()))
}

func TestCorruptGzip(t *testing.T) {
	pn := filepath.Join(t.TempDir(), "bad.txt.gz")
	assert.Nil(t, os.WriteFile(pn, []byte("not gzip at all"), 0644))
	fsl := fslib.NewFsLib()
	_, err := fsl.GetFile(pn)
	assert.True(t, serr.IsErrCode(err, serr.TErrRead), "err %v", err)
}
