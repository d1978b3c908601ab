package client

import "time"

// Client is a person receiving care at home.
type Client struct {
	ID            string
	FullName      string
	Address       *string
	HomeLatitude  *float64
	HomeLongitude *float64
	Phone         *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
