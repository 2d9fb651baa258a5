package utils

import (
	"fmt"
	"time"
)

// ContractNumber returns the default contract number for a contract created at t.
func ContractNumber(t time.Time) string {
	return fmt.Sprintf("CTR-%d", t.UnixMilli())
}
