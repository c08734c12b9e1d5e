package test

import (
	"fmt"
)

const MBYTE = 1 << 20

func Mbyte(sz uint64) float64 {
	return float64(sz) / float64(MBYTE)
}

func TputStr(sz uint64, ms int64) string {
	return fmt.Sprintf("%.2fMB/s", Tput(sz, ms))
}

func Tput(sz uint64, ms int64) float64 {
	if ms <= 0 {
		ms = 1
	}
	t := float64(ms) / 1000
	return Mbyte(sz) / t
}
