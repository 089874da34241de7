// Package repository defines error values shared across repositories.
// These sentinels let handlers distinguish failure scenarios without
// inspecting driver error strings: ErrDuplicate signals a unique-key
// violation (a staff code or employee number lost the insert race), and
// callers treat sql.ErrNoRows as "not found".
package repository

import "errors"

// ErrDuplicate is returned when an insert hits a unique constraint.  The
// code issuer and registration workflow react by generating a fresh
// candidate and retrying.
var ErrDuplicate = errors.New("duplicate key")
