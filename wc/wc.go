package wc

//
// Sentence-segmented word and n-gram counting over one input.
//

import (
	"bufio"
	"io"
	"math"

	db "ngramwc/debug"
	"ngramwc/mr/kvmap"
)

// The scanner starts with a BUFSZ buffer and grows it only for longer
// words, up to MAXWORD.
const (
	BUFSZ   = 1 << 16
	MAXWORD = math.MaxInt32
)

// Sentences is a lazy sequence of the sentences of a text, each a
// sequence of tokens.  Sentences without tokens are skipped.  Use it
// like a bufio.Scanner:
//
//	s := NewSentences(rdr)
//	for s.Next() {
//		use(s.Tokens())
//	}
//	err := s.Err()
type Sentences struct {
	sc    *bufio.Scanner
	toks  []string
	nsent int
	ntok  int
}

func NewSentences(rdr io.Reader) *Sentences {
	sc := bufio.NewScanner(NewReader(rdr))
	sc.Buffer(make([]byte, 0, BUFSZ), MAXWORD)
	sc.Split(ScanTerms)
	return &Sentences{sc: sc, toks: make([]string, 0, 32)}
}

func (s *Sentences) Next() bool {
	s.toks = s.toks[:0]
	for s.sc.Scan() {
		b := s.sc.Bytes()
		if isDelim(b) {
			if len(s.toks) > 0 {
				break
			}
			continue
		}
		s.toks = append(s.toks, string(b))
	}
	if len(s.toks) == 0 {
		return false
	}
	s.nsent++
	s.ntok += len(s.toks)
	return true
}

// Tokens returns the current sentence.  The slice is overwritten by
// the next call to Next.
func (s *Sentences) Tokens() []string {
	return s.toks
}

func (s *Sentences) Err() error {
	return s.sc.Err()
}

func (s *Sentences) Nsentence() int {
	return s.nsent
}

func (s *Sentences) Ntoken() int {
	return s.ntok
}

// Collect reads all sentences of rdr.
func Collect(rdr io.Reader) ([][]string, error) {
	ss := make([][]string, 0)
	s := NewSentences(rdr)
	for s.Next() {
		ss = append(ss, append([]string{}, s.Tokens()...))
	}
	return ss, s.Err()
}

type Tcount struct {
	Nsentence int
	Ntoken    int
}

// Wc adds every word of rdr to words and every n-gram to ngrams.
// Either table may be nil.
func Wc(rdr io.Reader, n int, words, ngrams *kvmap.KVMap) (Tcount, error) {
	echo := db.WillBePrinted(db.WC)
	s := NewSentences(rdr)
	for s.Next() {
		toks := s.Tokens()
		if words != nil {
			for _, w := range toks {
				words.Add(w, 1)
			}
		}
		if ngrams != nil {
			Ngrams(toks, n, func(g []byte) bool {
				ngrams.Inc(g)
				if echo {
					db.DPrintf(db.WC, "%s", g)
				}
				return true
			})
		}
	}
	return Tcount{s.Nsentence(), s.Ntoken()}, s.Err()
}
