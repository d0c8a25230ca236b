// Package keylock serializes work on the same key without a global lock.
// Keys are hashed onto a fixed set of stripes, so unrelated keys rarely
// contend and the memory cost stays constant.
package keylock

import (
	"hash/maphash"
	"slices"
	"sync"
)

const defaultStripes = 64

// Striped is a set of mutexes selected by key hash.
type Striped struct {
	seed    maphash.Seed
	stripes []sync.Mutex
}

// New creates a Striped lock. Non-positive n selects the default of 64.
func New(n int) *Striped {
	if n <= 0 {
		n = defaultStripes
	}
	return &Striped{seed: maphash.MakeSeed(), stripes: make([]sync.Mutex, n)}
}

// Lock acquires the stripe for key and returns the matching unlock.
//
//	unlock := l.Lock(profileID.String())
//	defer unlock()
func (l *Striped) Lock(key string) (unlock func()) {
	mu := &l.stripes[l.stripe(key)]
	mu.Lock()
	return mu.Unlock
}

// LockAll acquires the stripes of every key at once. Stripes are taken in
// index order and each only once, so keys sharing a stripe and concurrent
// LockAll calls cannot deadlock.
func (l *Striped) LockAll(keys ...string) (unlock func()) {
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		idx = append(idx, l.stripe(k))
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)
	for _, i := range idx {
		l.stripes[i].Lock()
	}
	return func() {
		for _, i := range slices.Backward(idx) {
			l.stripes[i].Unlock()
		}
	}
}

func (l *Striped) stripe(key string) int {
	return int(maphash.String(l.seed, key) % uint64(len(l.stripes)))
}
