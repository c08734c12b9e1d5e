package report_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ngramwc/mr/kvmap"
	"ngramwc/report"
)

func table(kvs map[string]uint64) *kvmap.KVMap {
	kvm := kvmap.NewKVMap()
	for k, n := range kvs {
		kvm.Add(k, n)
	}
	return kvm
}

func TestSortOrder(t *testing.T) {
	es := report.Sort(table(map[string]uint64{"the": 5, "cat": 5, "dog": 3}))
	var buf bytes.Buffer
	assert.Nil(t, report.Write(&buf, es))
	assert.Equal(t, "cat: 5\nthe: 5\ndog: 3\n", buf.String())
}

func TestTop(t *testing.T) {
	es := report.Sort(table(map[string]uint64{"a": 1, "b": 2, "c": 3}))
	assert.Equal(t, 3, len(report.Top(es, 0)))
	assert.Equal(t, 3, len(report.Top(es, 10)))
	top := report.Top(es, 2)
	assert.Equal(t, []kvmap.Entry{{Key: "c", N: 3}, {Key: "b", N: 2}}, top)
}

func TestTurnOrder(t *testing.T) {
	const N = 8
	turn := report.NewTurn()
	order := make([]int, 0, N)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := N - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Nil(t, turn.Wait(i))
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			turn.Done(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
	assert.Equal(t, N, turn.Next())
}

func TestTurnAbort(t *testing.T) {
	turn := report.NewTurn()
	ch := make(chan error)
	go func() {
		ch <- turn.Wait(2)
	}()
	time.Sleep(10 * time.Millisecond)
	e := errors.New("lane 0 failed")
	turn.Abort(e)
	assert.Equal(t, e, <-ch)
	assert.Equal(t, e, turn.Wait(0), "aborted turn stays aborted")
}

func TestLanesPrint(t *testing.T) {
	const N = 3
	var buf bytes.Buffer
	l := report.NewLanes(&buf, 2)
	tabs := []*kvmap.KVMap{
		table(map[string]uint64{"a": 1, "b": 2, "c": 3}),
		table(map[string]uint64{"d": 7}),
		table(map[string]uint64{"e": 1, "f": 1, "g": 1}),
	}
	var wg sync.WaitGroup
	for i := N - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Nil(t, l.Print(i, tabs[i]))
		}(i)
	}
	wg.Wait()
	exp := "=== lane 0 ===\nc: 3\nb: 2\n" +
		"=== lane 1 ===\nd: 7\n" +
		"=== lane 2 ===\ne: 1\nf: 1\n"
	assert.Equal(t, exp, buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestLanesWriteErr(t *testing.T) {
	l := report.NewLanes(failWriter{}, 0)
	ch := make(chan error)
	go func() {
		ch <- l.Print(1, table(map[string]uint64{"x": 1}))
	}()
	err := l.Print(0, table(map[string]uint64{"y": 1}))
	assert.NotNil(t, err)
	assert.NotNil(t, <-ch)
}

func TestMerger(t *testing.T) {
	m := report.NewMerger()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Add(table(map[string]uint64{strings.Repeat("x", i+1): uint64(i + 1), "all": 1}))
		}(i)
	}
	wg.Wait()
	var buf bytes.Buffer
	assert.Nil(t, m.Print(&buf, 0))
	assert.Equal(t, "all: 4\nxxxx: 4\nxxx: 3\nxx: 2\nx: 1\n", buf.String())
}
