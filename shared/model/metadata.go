package model

import "time"

// Metadata holds row timestamps. Stored as timestamptz, always read back in UTC.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
