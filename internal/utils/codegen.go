package utils

import (
    "crypto/rand" // secure random number generation
    "fmt"
    "math/big"
)

// Staff codes are 10-digit numeric strings with a non-zero leading digit,
// i.e. uniformly drawn from [1_000_000_000, 9_999_999_999].  Employee
// numbers are "DFCU" followed by three digits in [100, 999].
const (
    staffCodeMin = int64(1_000_000_000)
    staffCodeMax = int64(9_999_999_999)

    employeeNumberPrefix = "DFCU"
    employeeDigitsMin    = int64(100)
    employeeDigitsMax    = int64(999)
)

// NewStaffCode generates a candidate staff code.  Uniqueness against the
// store is the caller's responsibility; the generator only guarantees the
// fixed-length numeric format.
func NewStaffCode() (string, error) {
    n, err := randRange(staffCodeMin, staffCodeMax)
    if err != nil {
        return "", err
    }
    return fmt.Sprintf("%d", n), nil
}

// NewEmployeeNumber generates a candidate employee number such as "DFCU417".
// As with staff codes, the caller checks the store for collisions.
func NewEmployeeNumber() (string, error) {
    n, err := randRange(employeeDigitsMin, employeeDigitsMax)
    if err != nil {
        return "", err
    }
    return fmt.Sprintf("%s%d", employeeNumberPrefix, n), nil
}

// randRange returns a uniformly distributed integer in [min, max] using the
// crypto/rand source.
func randRange(min, max int64) (int64, error) {
    n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
    if err != nil {
        return 0, err
    }
    return min + n.Int64(), nil
}
