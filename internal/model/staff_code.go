package model

import "time"

// StaffCode models a row in the `staff_codes` table.  A staff code is a
// single-use registration credential: it is handed to a new hire out of
// band, redeemed exactly once during registration, and swept by the reaper
// once used or past its 24 hour expiry window.
//
// Invariants:
//  - Code is unique among live rows.
//  - UsedAt is set if and only if Used is true.
//  - StaffID links to the staff row created when the code was consumed.
type StaffCode struct {
    ID        uint64     `json:"-"`
    Code      string     `json:"code"`
    Used      bool       `json:"used"`
    StaffID   *uint64    `json:"-"`
    CreatedAt time.Time  `json:"createdAt"`
    ExpiresAt time.Time  `json:"expiresAt"`
    UsedAt    *time.Time `json:"usedAt"`
}
