package wc_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ngramwc/mr/kvmap"
	"ngramwc/wc"
)

func TestNormalize(t *testing.T) {
	b := wc.Normalize([]byte("Hello, World!\n\tA1b_c"))
	assert.Equal(t, "hello. world.  a.b.c", string(b))
	assert.Equal(t, byte(0xc3), wc.NormalizeByte(0xc3))
}

func TestScanTerms(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("abc  def.'s x"))
	sc.Split(wc.ScanTerms)
	toks := []string{}
	for sc.Scan() {
		toks = append(toks, sc.Text())
	}
	assert.Nil(t, sc.Err())
	assert.Equal(t, []string{"abc", "def", ".", "s", "x"}, toks)
}

func TestScanTermsSmallBuffer(t *testing.T) {
	sc := bufio.NewScanner(wc.NewReader(strings.NewReader("The quick, brown fox")))
	sc.Buffer(make([]byte, 0, 8), 16)
	sc.Split(wc.ScanTerms)
	toks := []string{}
	for sc.Scan() {
		toks = append(toks, sc.Text())
	}
	assert.Nil(t, sc.Err())
	assert.Equal(t, []string{"the", "quick", ".", "brown", "fox"}, toks)
}

func TestSentences(t *testing.T) {
	ss, err := wc.Collect(strings.NewReader("  Cat sat. dog ran!!  3 birds\nflew"))
	assert.Nil(t, err)
	assert.Equal(t, [][]string{{"cat", "sat"}, {"dog", "ran"}, {"birds", "flew"}}, ss)
}

func TestSentencesRestart(t *testing.T) {
	const txt = "one two. three"
	ss1, err := wc.Collect(strings.NewReader(txt))
	assert.Nil(t, err)
	ss2, err := wc.Collect(strings.NewReader(txt))
	assert.Nil(t, err)
	assert.Equal(t, ss1, ss2)
}

func TestSentencesNonASCII(t *testing.T) {
	ss, err := wc.Collect(strings.NewReader("caf\xc3\xa9 au lait"))
	assert.Nil(t, err)
	assert.Equal(t, [][]string{{"caf", "au", "lait"}}, ss)
}

func TestNgrams(t *testing.T) {
	toks := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"a b", "b c", "c d"}, wc.NgramStrings(toks, 2))
	assert.Equal(t, []string{"a b c d"}, wc.NgramStrings(toks, 4))
	assert.Equal(t, toks, wc.NgramStrings(toks, 1))
	assert.Equal(t, 0, len(wc.NgramStrings(toks, 5)))
	assert.Equal(t, 0, len(wc.NgramStrings(nil, 1)))
}

func TestNgramsStop(t *testing.T) {
	n := 0
	wc.Ngrams([]string{"a", "b", "c", "d"}, 1, func(g []byte) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestSentenceBoundary(t *testing.T) {
	ngrams := kvmap.NewKVMap()
	_, err := wc.Wc(strings.NewReader("cat sat. dog ran"), 2, nil, ngrams)
	assert.Nil(t, err)
	assert.Equal(t, 2, ngrams.Len())
	n, _ := ngrams.Get("cat sat")
	assert.Equal(t, uint64(1), n)
	n, _ = ngrams.Get("dog ran")
	assert.Equal(t, uint64(1), n)
	_, ok := ngrams.Get("sat dog")
	assert.False(t, ok)
}

func TestShortSentence(t *testing.T) {
	ngrams := kvmap.NewKVMap()
	cnt, err := wc.Wc(strings.NewReader("a b"), 3, nil, ngrams)
	assert.Nil(t, err)
	assert.Equal(t, 0, ngrams.Len())
	assert.Equal(t, 2, cnt.Ntoken)
	assert.Equal(t, 1, cnt.Nsentence)
}

func TestWcNormalization(t *testing.T) {
	words := kvmap.NewKVMap()
	ngrams := kvmap.NewKVMap()
	_, err := wc.Wc(strings.NewReader("Hello, World!\n"), 1, words, ngrams)
	assert.Nil(t, err)
	for _, kvm := range []*kvmap.KVMap{words, ngrams} {
		assert.Equal(t, 2, kvm.Len())
		n, _ := kvm.Get("hello")
		assert.Equal(t, uint64(1), n)
		n, _ = kvm.Get("world")
		assert.Equal(t, uint64(1), n)
	}
}

func TestWcLongSentence(t *testing.T) {
	// One sentence far larger than the scanner buffer.
	txt := strings.Repeat("ab cd ", 100000)
	ngrams := kvmap.NewKVMap()
	cnt, err := wc.Wc(strings.NewReader(txt), 2, nil, ngrams)
	assert.Nil(t, err)
	assert.Equal(t, 200000, cnt.Ntoken)
	n, _ := ngrams.Get("ab cd")
	assert.Equal(t, uint64(100000), n)
	n, _ = ngrams.Get("cd ab")
	assert.Equal(t, uint64(99999), n)
}

func TestWcLongWord(t *testing.T) {
	long := strings.Repeat("a", 2<<20)
	words := kvmap.NewKVMap()
	ngrams := kvmap.NewKVMap()
	cnt, err := wc.Wc(strings.NewReader("hello world. "+long+" end"), 2, words, ngrams)
	assert.Nil(t, err, "Wc %v", err)
	assert.Equal(t, 4, cnt.Ntoken)
	n, _ := words.Get(long)
	assert.Equal(t, uint64(1), n)
	n, _ = ngrams.Get(long + " end")
	assert.Equal(t, uint64(1), n)
	n, _ = ngrams.Get("hello world")
	assert.Equal(t, uint64(1), n)
}
