package kvmap

//
// A frequency table: term -> occurrence count.  Entries are held by
// pointer so that a hit on Inc never re-assigns the map key, which
// lets Inc look up with a key that aliases the caller's buffer.
//

import (
	"fmt"

	"github.com/fmstephe/unsafeutil"
)

type Entry struct {
	Key string
	N   uint64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Key, e.N)
}

type KVMap struct {
	kvs map[string]*Entry
}

func NewKVMap() *KVMap {
	return NewKVMapCap(0)
}

func NewKVMapCap(n int) *KVMap {
	return &KVMap{
		kvs: make(map[string]*Entry, n),
	}
}

func (kvm *KVMap) lookup(key []byte) *Entry {
	k := unsafeutil.BytesToString(key)
	if e, ok := kvm.kvs[k]; ok {
		return e
	}
	k = string(key)
	e := &Entry{Key: k}
	kvm.kvs[k] = e
	return e
}

// Inc counts one occurrence of key.  key may be reused by the caller
// after Inc returns.
func (kvm *KVMap) Inc(key []byte) {
	kvm.lookup(key).N++
}

func (kvm *KVMap) Add(key string, n uint64) {
	if e, ok := kvm.kvs[key]; ok {
		e.N += n
		return
	}
	kvm.kvs[key] = &Entry{key, n}
}

func (kvm *KVMap) Get(key string) (uint64, bool) {
	if e, ok := kvm.kvs[key]; ok {
		return e.N, true
	}
	return 0, false
}

func (kvm *KVMap) Len() int {
	return len(kvm.kvs)
}

// Total returns the sum of all counts.
func (kvm *KVMap) Total() uint64 {
	n := uint64(0)
	for _, e := range kvm.kvs {
		n += e.N
	}
	return n
}

// Iter calls f for each entry in no particular order until f returns
// false.
func (kvm *KVMap) Iter(f func(key string, n uint64) bool) {
	for k, e := range kvm.kvs {
		if !f(k, e.N) {
			return
		}
	}
}

func (kvm *KVMap) Entries() []Entry {
	es := make([]Entry, 0, len(kvm.kvs))
	for _, e := range kvm.kvs {
		es = append(es, *e)
	}
	return es
}

func (dst *KVMap) Merge(src *KVMap) {
	for k, e := range src.kvs {
		dst.Add(k, e.N)
	}
}

// Split partitions kvm into nbucket tables; entry k lands in table
// bucket(k).  kvm itself is left unchanged.
func (kvm *KVMap) Split(nbucket int, bucket func(key string) int) []*KVMap {
	kvms := make([]*KVMap, nbucket)
	for i := range kvms {
		kvms[i] = NewKVMapCap(len(kvm.kvs)/nbucket + 1)
	}
	for k, e := range kvm.kvs {
		kvms[bucket(k)].kvs[k] = &Entry{k, e.N}
	}
	return kvms
}

func (kvm *KVMap) String() string {
	return fmt.Sprintf("{len %d tot %d}", kvm.Len(), kvm.Total())
}
