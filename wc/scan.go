package wc

// ScanTerms is a split function for a bufio.Scanner over normalized
// text.  It returns each run of word bytes as a token, and each DELIM
// as a one-byte token of its own, so that callers can see sentence
// boundaries.  All other bytes separate tokens and are dropped.
func ScanTerms(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip leading separators
	start := 0
	for start < len(data) && data[start] != DELIM && !isWord(data[start]) {
		start++
	}
	if start < len(data) && data[start] == DELIM {
		return start + 1, data[start : start+1], nil
	}
	// Scan until end of word; leave a following DELIM for the next call
	for i := start; i < len(data); i++ {
		if !isWord(data[i]) {
			return i, data[start:i], nil
		}
	}
	// If we're at EOF, we have a final, non-empty, non-terminated word. Return it.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data.
	return start, nil, nil
}

func isDelim(token []byte) bool {
	return len(token) == 1 && token[0] == DELIM
}
