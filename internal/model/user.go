package model

import "time"

// RoleAdmin is the only role provisioned today.  Staff members authenticate
// indirectly through their employee number; only administrators hold user
// accounts.
const RoleAdmin = "ADMIN"

// User represents an administrator account as stored in the `users` table.
// Each field corresponds to a column in the database.  RefreshToken holds
// the currently active refresh token verbatim; it is blanked on logout so a
// previously issued token can no longer mint access tokens.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (currently always ADMIN).
//  RefreshToken – active refresh token, empty when logged out.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    RefreshToken string    // users.refresh_token ('' when logged out)
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
