package debug

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//
// Debug output is controled by NGRAMDEBUG environment variable, which
// can be a list of labels (e.g., "MR;SHUFFLE").
//

const NGRAMDEBUG = "NGRAMDEBUG"

// labels is replaced as a whole, never mutated, so readers need no
// lock.
var (
	once   sync.Once
	labels atomic.Pointer[map[Tselector]bool]
	logger *zap.SugaredLogger
)

func initLogger() {
	labels.Store(debugLabels(os.Getenv(NGRAMDEBUG)))
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.TimeKey = "T"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
}

func debugLabels(s string) *map[Tselector]bool {
	m := make(map[Tselector]bool)
	if s != "" {
		for _, l := range strings.Split(s, ";") {
			m[Tselector(l)] = true
		}
	}
	return &m
}

// SetDebug replaces the enabled labels; used by tests and by the
// command when a job file names debug labels.  Safe to call while
// other goroutines log.
func SetDebug(s string) {
	once.Do(initLogger)
	labels.Store(debugLabels(s))
}

func WillBePrinted(label Tselector) bool {
	once.Do(initLogger)
	return label == ALWAYS || (*labels.Load())[label]
}

func DPrintf(label Tselector, format string, v ...interface{}) {
	if !WillBePrinted(label) {
		return
	}
	logger.Infof("%v %v", label, fmt.Sprintf(format, v...))
}

func DFatalf(format string, v ...interface{}) {
	once.Do(initLogger)
	// Get info for the caller.
	pc, file, line, ok := runtime.Caller(1)
	fnDetails := runtime.FuncForPC(pc)
	if ok && fnDetails != nil {
		logger.Fatalf("FATAL %v %v:%v %v", fnDetails.Name(), file, line, fmt.Sprintf(format, v...))
	} else {
		logger.Fatalf("FATAL (missing details) %v", fmt.Sprintf(format, v...))
	}
}

// Sync flushes buffered log entries; call before exiting.
func Sync() {
	once.Do(initLogger)
	logger.Sync()
}
