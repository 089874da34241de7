// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// StaffRegisteredEvent is published after a staff member successfully
// registers with a valid code.  It carries enough for downstream consumers
// to log or notify without querying the primary database.
type StaffRegisteredEvent struct {
	StaffID        uint64 `json:"staff_id"`
	EmployeeNumber string `json:"employee_number"`
	Surname        string `json:"surname"`
	OtherNames     string `json:"other_names"`
	Code           string `json:"code"`
	RegisteredAt   string `json:"registered_at"`
}
