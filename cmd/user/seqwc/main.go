package main

//
// Sequential baseline: counts a directory on one thread and prints the
// merged report, for comparison with ngram-wc.
//

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/report"
	"ngramwc/seqwc"
)

var (
	n     = flag.Int("n", 2, "n-gram length")
	topk  = flag.Int("topk", 0, "print only the top k terms (0 prints all)")
	words = flag.Bool("words", false, "report words instead of n-grams")
	ext   = flag.String("ext", ".txt", "comma-separated file extensions to count")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 || *n < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %v [-n n] [-topk k] [-words] [-ext exts] dir\n", os.Args[0])
		os.Exit(2)
	}
	res, err := seqwc.Wc(fslib.NewFsLib(), flag.Arg(0), strings.Split(*ext, ","), *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: error %v\n", os.Args[0], err)
		db.Sync()
		os.Exit(1)
	}
	kvm := res.Ngrams
	if *words {
		kvm = res.Words
	}
	wr := bufio.NewWriter(os.Stdout)
	if err := report.Write(wr, report.Top(report.Sort(kvm), *topk)); err != nil {
		db.DFatalf("Write: error %v", err)
	}
	if err := wr.Flush(); err != nil {
		db.DFatalf("Flush: error %v", err)
	}
	fmt.Fprintf(os.Stderr, "%d files %s: %d words %d %d-grams\n", res.Nfile, humanize.Bytes(res.In), res.Words.Total(), res.Ngrams.Total(), *n)
}
