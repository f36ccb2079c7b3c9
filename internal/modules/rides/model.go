// README: Ride request record and status definitions.
package rides

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusMatched   Status = "matched"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var validStatuses = []Status{StatusPending, StatusMatched, StatusCompleted, StatusCancelled}

var (
	ErrNotFound      = errors.New("ride request not found")
	ErrBadRequest    = errors.New("user_id, source_location and dest_location are required")
	ErrInvalidStatus = fmt.Errorf("invalid status. Must be one of: %v", validStatuses)
)

// ParseStatus validates a raw status string against the closed enum.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	for _, v := range validStatuses {
		if s == v {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// RideRequest is the persisted record of a rider asking for a trip. ID is the
// serial primary key; Ref is the public reference handed to clients.
type RideRequest struct {
	ID             int64     `json:"id"`
	Ref            string    `json:"ref"`
	UserID         string    `json:"user_id"`
	SourceLocation string    `json:"source_location"`
	DestLocation   string    `json:"dest_location"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
