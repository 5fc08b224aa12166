package util

import (
	"fmt"
	"time"
)

// Timestamp is a custom time that formats to a shorter form in all JSON messages
type Timestamp time.Time

// MarshalJSON is a custom JSON marshaller for the Timestamp
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	t := time.Time(ts)
	stamp := fmt.Sprintf("\"%s\"", t.Format(time.StampMilli))
	return []byte(stamp), nil
}
