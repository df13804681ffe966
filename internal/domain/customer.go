package domain

import "time"

// Customer клиент салона
type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
