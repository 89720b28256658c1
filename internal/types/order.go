package types

type Status string

type PaymentStatus string

const (
	StatusReceived Status = "Order Received"

	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

type Order struct {
	ID            int           `db:"id" json:"order_id"`
	CustomerName  string        `db:"customer_name" json:"customer_name"`
	ServiceType   string        `db:"service_type" json:"service_type"`
	Address       string        `db:"address" json:"address"`
	Status        Status        `db:"status" json:"status"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"payment_status"`
}
