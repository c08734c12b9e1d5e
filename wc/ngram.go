package wc

// Ngrams calls f with each window of n consecutive tokens of toks,
// joined by a single space, left to right.  The slice passed to f is
// reused between calls.  Ngrams stops early if f returns false.  A
// sentence shorter than n yields nothing.
func Ngrams(toks []string, n int, f func(gram []byte) bool) {
	if n < 1 || len(toks) < n {
		return
	}
	buf := make([]byte, 0, 64)
	for i := 0; i+n <= len(toks); i++ {
		buf = buf[:0]
		for j := i; j < i+n; j++ {
			if j > i {
				buf = append(buf, ' ')
			}
			buf = append(buf, toks[j]...)
		}
		if !f(buf) {
			return
		}
	}
}

func NgramStrings(toks []string, n int) []string {
	grams := make([]string, 0)
	Ngrams(toks, n, func(g []byte) bool {
		grams = append(grams, string(g))
		return true
	})
	return grams
}
