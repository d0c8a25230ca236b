package keylock

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameKeySerializes(t *testing.T) {
	l := New(0)
	counter := 0
	var wg sync.WaitGroup

	for range 100 {
		wg.Go(func() {
			unlock := l.Lock("profile-1")
			defer unlock()
			counter++
		})
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDifferentKeysDoNotDeadlock(t *testing.T) {
	l := New(8)
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() {
			unlock := l.Lock(fmt.Sprintf("profile-%d", i))
			defer unlock()
		})
	}
	wg.Wait()
}

func TestStripeIsStableAndSpread(t *testing.T) {
	l := New(32)
	assert.Equal(t, l.stripe("a"), l.stripe("a"))

	seen := make(map[int]bool)
	for i := range 64 {
		seen[l.stripe(fmt.Sprintf("profile-%d", i))] = true
	}
	assert.GreaterOrEqual(t, len(seen), 8, "keys should spread across stripes")
}

func TestLockAllSharedStripe(t *testing.T) {
	l := New(1)
	unlock := l.LockAll("profile-1", "profile-2", "profile-1")
	unlock()

	unlock = l.Lock("profile-3")
	unlock()
}

func TestLockAllExcludesSingleLock(t *testing.T) {
	l := New(8)
	unlock := l.LockAll("profile-1", "profile-2")

	acquired := make(chan struct{})
	go func() {
		u := l.Lock("profile-2")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("single lock acquired while LockAll held the key")
	case <-time.After(50 * time.Millisecond):
	}
	unlock()
	<-acquired
}

func TestLockAllConcurrentOverlap(t *testing.T) {
	l := New(4)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			unlock := l.LockAll(fmt.Sprintf("profile-%d", i), fmt.Sprintf("profile-%d", i+1), "profile-0")
			defer unlock()
		})
	}
	wg.Wait()
}
