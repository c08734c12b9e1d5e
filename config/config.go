package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	db "ngramwc/debug"
	"ngramwc/serr"
)

type Tmode string

const (
	MODE_LANES Tmode = "lanes" // per-lane top-K, printed in lane order
	MODE_MERGE Tmode = "merge" // one globally sorted list
)

type Ttable string

const (
	TABLE_NGRAM Ttable = "ngram"
	TABLE_WORD  Ttable = "word"
)

type Job struct {
	Dir   string   `yaml:"dir" mapstructure:"dir"`
	N     int      `yaml:"n" mapstructure:"n"`
	Nlane int      `yaml:"nlane" mapstructure:"nlane"`
	TopK  int      `yaml:"topk" mapstructure:"topk"`
	Mode  Tmode    `yaml:"mode" mapstructure:"mode"`
	Table Ttable   `yaml:"table" mapstructure:"table"`
	Exts  []string `yaml:"exts" mapstructure:"exts"`
	Stats bool     `yaml:"stats" mapstructure:"stats"`
	Debug string   `yaml:"debug" mapstructure:"debug"`
}

func NewJob() *Job {
	return &Job{
		N:     2,
		Nlane: runtime.NumCPU(),
		Mode:  MODE_MERGE,
		Table: TABLE_NGRAM,
		Exts:  []string{".txt"},
	}
}

func (job *Job) String() string {
	return fmt.Sprintf("{dir %q n %d nlane %d topk %d mode %v table %v exts %v}", job.Dir, job.N, job.Nlane, job.TopK, job.Mode, job.Table, job.Exts)
}

// ReadJobConfig reads a yaml job file; fields it does not mention keep
// their defaults.
func ReadJobConfig(pn string) (*Job, error) {
	job := NewJob()
	file, err := os.Open(pn)
	if err != nil {
		db.DPrintf(db.ERROR, "ReadJobConfig err %v\n", err)
		return nil, serr.NewErrErrorf(serr.TErrConfig, pn, err)
	}
	defer file.Close()
	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	if err := d.Decode(job); err != nil {
		db.DPrintf(db.ERROR, "ReadJobConfig %v decode err %v\n", pn, err)
		return nil, serr.NewErrErrorf(serr.TErrConfig, pn, err)
	}
	db.DPrintf(db.CONFIG, "ReadJobConfig %v: %v", pn, job)
	return job, nil
}

// Override sets the fields named in kvs (by their mapstructure tag),
// e.g., the command-line flags a user set explicitly.
func (job *Job) Override(kvs map[string]interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           job,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(kvs); err != nil {
		return serr.NewErrErrorf(serr.TErrConfig, "override", err)
	}
	db.DPrintf(db.CONFIG, "Override %v: %v", kvs, job)
	return nil
}

func (job *Job) Validate() error {
	if job.N < 1 {
		return serr.NewErr(serr.TErrConfig, fmt.Sprintf("n %d < 1", job.N))
	}
	if job.Nlane < 1 {
		return serr.NewErr(serr.TErrConfig, fmt.Sprintf("nlane %d < 1", job.Nlane))
	}
	switch job.Mode {
	case MODE_LANES, MODE_MERGE:
	default:
		return serr.NewErr(serr.TErrConfig, fmt.Sprintf("mode %q", job.Mode))
	}
	switch job.Table {
	case TABLE_NGRAM, TABLE_WORD:
	default:
		return serr.NewErr(serr.TErrConfig, fmt.Sprintf("table %q", job.Table))
	}
	if len(job.Exts) == 0 {
		return serr.NewErr(serr.TErrConfig, "no file extensions")
	}
	return nil
}
