package db

import (
	"fmt"
)

type OrderNotFoundError struct {
	OrderID int
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %d not found", e.OrderID)
}

type OrderAlreadyPaidError struct {
	OrderID int
}

func (e *OrderAlreadyPaidError) Error() string {
	return fmt.Sprintf("Order %d already paid", e.OrderID)
}
