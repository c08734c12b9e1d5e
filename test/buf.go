package test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thanhpk/randstr"
)

// Words returns n random lower-case words drawn from a vocabulary of
// nvocab words.  Words are at most 4 bytes so that small vocabularies
// produce repeated n-grams.
func Words(n, nvocab int) []string {
	vocab := make([]string, nvocab)
	for i := range vocab {
		vocab[i] = randstr.String(1+i%4, "abcdefghijklmnopqrstuvwxyz")
	}
	ws := make([]string, n)
	for i := range ws {
		ws[i] = vocab[rand.Intn(nvocab)]
	}
	return ws
}

// Text joins ws into sentences of sentlen words, separated by a
// randomly chosen punctuation mark or digit.
func Text(ws []string, sentlen int) string {
	const seps = ".,;:!?0123456789"
	var sb strings.Builder
	for i, w := range ws {
		if i > 0 {
			if i%sentlen == 0 {
				sb.WriteByte(seps[rand.Intn(len(seps))])
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		if i%7 == 0 {
			w = strings.ToUpper(w)
		}
		sb.WriteString(w)
	}
	return sb.String()
}

// WriteFiles creates the files in files (name -> contents) under dir.
func WriteFiles(t testing.TB, dir string, files map[string]string) []string {
	pns := make([]string, 0, len(files))
	for n, s := range files {
		pn := filepath.Join(dir, n)
		if err := os.MkdirAll(filepath.Dir(pn), 0777); err != nil {
			t.Fatalf("MkdirAll %v err %v", pn, err)
		}
		if err := os.WriteFile(pn, []byte(s), 0644); err != nil {
			t.Fatalf("WriteFile %v err %v", pn, err)
		}
		pns = append(pns, pn)
	}
	return pns
}

// MkCorpus writes nfile random text files of nword words each into a
// fresh temporary directory and returns the directory.
func MkCorpus(t testing.TB, nfile, nword, nvocab int) string {
	dir := t.TempDir()
	files := make(map[string]string, nfile)
	for i := 0; i < nfile; i++ {
		files[filepath.Join("d"+randstr.String(1, "0123"), "f"+randstr.Hex(8)+".txt")] = Text(Words(nword, nvocab), 1+i%13)
	}
	WriteFiles(t, dir, files)
	return dir
}
