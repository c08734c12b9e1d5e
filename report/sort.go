package report

import (
	"strings"

	"golang.org/x/exp/slices"

	"ngramwc/mr/kvmap"
)

// Compare orders entries by count descending, then by key ascending.
func Compare(a, b kvmap.Entry) int {
	switch {
	case a.N > b.N:
		return -1
	case a.N < b.N:
		return 1
	}
	return strings.Compare(a.Key, b.Key)
}

func Sort(kvm *kvmap.KVMap) []kvmap.Entry {
	es := kvm.Entries()
	slices.SortFunc(es, Compare)
	return es
}

// Top returns the first k entries of es; k <= 0 means all of them.
func Top(es []kvmap.Entry, k int) []kvmap.Entry {
	if k <= 0 || k >= len(es) {
		return es
	}
	return es[:k]
}
