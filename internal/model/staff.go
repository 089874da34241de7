package model

import "time"

// Staff represents an employee record in the `staff` table.  A staff row is
// created by the registration workflow after a valid staff code is consumed
// and is never deleted by the application.  Surname, other names and the
// employee number are immutable after creation; only the date of birth and
// photo may be amended later.
type Staff struct {
    ID             uint64    `json:"id"`
    Surname        string    `json:"surname"`
    OtherNames     string    `json:"otherNames"`
    DateOfBirth    time.Time `json:"dateOfBirth"`
    PhotoID        *string   `json:"photoId,omitempty"` // base64 image payload
    UniqueCode     string    `json:"uniqueCode"`        // the staff code consumed at registration
    EmployeeNumber string    `json:"employeeNumber"`    // DFCU followed by three digits
    CreatedAt      time.Time `json:"createdAt"`
    UpdatedAt      time.Time `json:"updatedAt"`
}
