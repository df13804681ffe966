package domain

import "time"

// Review отзыв клиента
type Review struct {
	ID         int64
	CustomerID int64
	Rating     int
	Comment    string
	CreatedAt  time.Time

	CustomerName string // Заполняется при выборке
}

// IsOwnedBy returns true if the review was written by the customer
func (r *Review) IsOwnedBy(customerID int64) bool {
	return r.CustomerID == customerID
}
