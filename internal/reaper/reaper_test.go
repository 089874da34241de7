package reaper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCode struct {
	id        uint64
	used      bool
	expiresAt time.Time
}

type fakeCodeStore struct {
	codes map[uint64]fakeCode
}

func (f *fakeCodeStore) ListReapable(_ context.Context, now time.Time, limit int) ([]uint64, error) {
	var ids []uint64
	for _, c := range f.codes {
		if len(ids) >= limit {
			break
		}
		if c.used || !c.expiresAt.After(now) {
			ids = append(ids, c.id)
		}
	}
	return ids, nil
}

func (f *fakeCodeStore) Delete(_ context.Context, id uint64) error {
	delete(f.codes, id)
	return nil
}

func newStore(codes ...fakeCode) *fakeCodeStore {
	f := &fakeCodeStore{codes: map[uint64]fakeCode{}}
	for _, c := range codes {
		f.codes[c.id] = c
	}
	return f
}

func TestSweepDeletesUsedAndExpiredOnly(t *testing.T) {
	now := time.Now().UTC()
	store := newStore(
		fakeCode{id: 1, used: true, expiresAt: now.Add(time.Hour)},   // used, still in window
		fakeCode{id: 2, used: false, expiresAt: now.Add(-time.Hour)}, // expired
		fakeCode{id: 3, used: false, expiresAt: now.Add(time.Hour)},  // live, must survive
	)
	r := New(store, 2*time.Minute, 10)

	n, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, live := store.codes[3]
	assert.True(t, live)
	assert.Len(t, store.codes, 1)
}

func TestSweepHonorsBatchCap(t *testing.T) {
	now := time.Now().UTC()
	var codes []fakeCode
	for i := uint64(1); i <= 25; i++ {
		codes = append(codes, fakeCode{id: i, used: true, expiresAt: now.Add(time.Hour)})
	}
	store := newStore(codes...)
	r := New(store, 2*time.Minute, 10)

	n, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Len(t, store.codes, 15)

	// The next sweep picks up where the last one left off.
	n, err = r.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Len(t, store.codes, 5)
}

func TestSweepIdempotentWhenNothingEligible(t *testing.T) {
	now := time.Now().UTC()
	store := newStore(fakeCode{id: 1, used: false, expiresAt: now.Add(time.Hour)})
	r := New(store, 2*time.Minute, 10)

	for i := 0; i < 3; i++ {
		n, err := r.Sweep(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	assert.Len(t, store.codes, 1)
}
