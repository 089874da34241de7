// Package reaper runs the background sweep that removes used and expired
// staff codes.  It owns no state beyond its store handle and ticks on a
// fixed interval; a failed sweep is logged and retried on the next tick.
package reaper

import (
	"context"
	"log"
	"time"
)

// CodeStore is the slice of staff-code persistence the reaper needs.
// Satisfied by repository.StaffCodeRepo.
type CodeStore interface {
	ListReapable(ctx context.Context, now time.Time, limit int) ([]uint64, error)
	Delete(ctx context.Context, id uint64) error
}

// Reaper deletes used or expired staff codes in bounded batches.
type Reaper struct {
	Codes    CodeStore
	Interval time.Duration // time between sweeps
	Batch    int           // max rows deleted per sweep
}

func New(codes CodeStore, interval time.Duration, batch int) *Reaper {
	return &Reaper{Codes: codes, Interval: interval, Batch: batch}
}

// Run sweeps on every tick until ctx is cancelled.  It is meant to be
// launched on its own goroutine from main.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := r.Sweep(ctx); err != nil {
				log.Printf("reaper: sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("reaper: deleted %d expired or used codes", n)
			}
		}
	}
}

// Sweep deletes up to Batch codes that are used or past expiry and returns
// how many were removed.  Running with nothing eligible deletes nothing, so
// repeated sweeps are idempotent.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ids, err := r.Codes.ListReapable(ctx, time.Now().UTC(), r.Batch)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, id := range ids {
		if err := r.Codes.Delete(ctx, id); err != nil {
			// Keep going; the next tick retries whatever is left.
			log.Printf("reaper: delete code id=%d failed: %v", id, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
