package mr

import (
	"fmt"
	"hash/fnv"

	"github.com/fmstephe/unsafeutil"

	"ngramwc/mr/kvmap"
)

// Use Khash(key) % nlane to choose the home lane of a term.
func Khash(key []byte) int {
	h := fnv.New32a()
	h.Write(key)
	return int(h.Sum32() & 0x7fffffff)
}

func KhashString(key string) int {
	return Khash(unsafeutil.StringToBytes(key))
}

// Home returns the lane that reduces key.
func Home(key string, nlane int) int {
	return KhashString(key) % nlane
}

// Split partitions kvm into nlane tables by home lane.
func Split(kvm *kvmap.KVMap, nlane int) []*kvmap.KVMap {
	return kvm.Split(nlane, func(k string) int {
		return Home(k, nlane)
	})
}

// A Partition holds the counts that lane Src has for terms homed at
// lane Dst.
type Partition struct {
	Src    int
	Dst    int
	Words  *kvmap.KVMap
	Ngrams *kvmap.KVMap
}

func (p *Partition) String() string {
	return fmt.Sprintf("{%d->%d words %v ngrams %v}", p.Src, p.Dst, p.Words, p.Ngrams)
}
