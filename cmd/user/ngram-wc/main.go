package main

//
// Counts the words and n-grams of the text files under a directory
// with nlane parallel lanes, and prints the report to stdout.
//

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ngramwc/config"
	db "ngramwc/debug"
	"ngramwc/fslib"
	"ngramwc/mr"
)

var (
	jobfile = flag.String("job", "", "yaml job file; flags override its fields")
	dir     = flag.String("dir", "", "input directory")
	n       = flag.Int("n", 2, "n-gram length")
	nlane   = flag.Int("nlane", 0, "number of lanes (default #cpus)")
	topk    = flag.Int("topk", 0, "print only the top k terms (0 prints all)")
	mode    = flag.String("mode", string(config.MODE_MERGE), "report mode: lanes or merge")
	table   = flag.String("table", string(config.TABLE_NGRAM), "table to report: ngram or word")
	ext     = flag.String("ext", ".txt", "comma-separated file extensions to count")
	stats   = flag.Bool("stats", false, "print lane statistics to stderr")
	debug   = flag.String("debug", "", "debug labels, e.g. \"MR;SHUFFLE\"")
)

var flag2field = map[string]string{
	"dir":   "dir",
	"n":     "n",
	"nlane": "nlane",
	"topk":  "topk",
	"mode":  "mode",
	"table": "table",
	"ext":   "exts",
	"stats": "stats",
	"debug": "debug",
}

func mkJob() (*config.Job, error) {
	job := config.NewJob()
	if *jobfile != "" {
		j, err := config.ReadJobConfig(*jobfile)
		if err != nil {
			return nil, err
		}
		job = j
	}
	kvs := make(map[string]interface{})
	flag.Visit(func(f *flag.Flag) {
		if k, ok := flag2field[f.Name]; ok {
			kvs[k] = f.Value.String()
		}
	})
	if err := job.Override(kvs); err != nil {
		return nil, err
	}
	return job, nil
}

func run(ctx context.Context) error {
	job, err := mkJob()
	if err != nil {
		return err
	}
	if job.Debug != "" {
		db.SetDebug(job.Debug)
	}
	wc, err := mr.NewWordCounter(fslib.NewFsLib(), job)
	if err != nil {
		return err
	}
	wr := bufio.NewWriter(os.Stdout)
	if err := wc.Run(ctx, wr); err != nil {
		return err
	}
	if err := wr.Flush(); err != nil {
		return err
	}
	if job.Stats {
		return wc.Stats().Print(os.Stderr)
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [-job file.yml] [flags] [dir]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() == 1 {
		flag.Set("dir", flag.Arg(0))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error %v\n", os.Args[0], err)
		db.Sync()
		os.Exit(1)
	}
	db.Sync()
}
