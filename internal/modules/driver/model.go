// README: Driver record and availability status definitions.
package driver

import (
	"errors"
	"fmt"

	"minicab/internal/types"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
)

var validStatuses = []Status{StatusAvailable, StatusBusy, StatusOffline}

var (
	ErrNotFound      = errors.New("driver not found")
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

// Driver is a registry record. ID is immutable after creation; Position,
// Geohash and Status are the only fields mutated afterwards.
type Driver struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Rating       float64     `json:"rating"`
	Vehicle      string      `json:"vehicle"`
	Position     types.Point `json:"position"`
	Status       Status      `json:"status"`
	Phone        string      `json:"phone"`
	LicensePlate string      `json:"license_plate"`
	// Geohash is the precision-5 cell of Position, recomputed on every move.
	Geohash string `json:"geohash"`
}
