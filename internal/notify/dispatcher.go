// Package notify delivers order status notifications over the SMS and email
// gateways. Delivery is best effort: the dispatcher attempts every channel the
// caller supplied contact info for and reports failures back without stopping.
package notify

import (
	"fmt"

	"github.com/avoronova/servicedesk/internal/types"
)

const statusUpdateSubject = "Order Status Update"

type SMSSender interface {
	SendSMS(to string, body string) error
}

type EmailSender interface {
	SendEmail(to string, subject string, body string) error
}

type Dispatcher struct {
	sms   SMSSender
	email EmailSender
}

func NewDispatcher(sms SMSSender, email EmailSender) *Dispatcher {
	return &Dispatcher{
		sms:   sms,
		email: email,
	}
}

// NotifyStatusUpdate sends the status update over every channel with a
// non-empty address and collects the failures.
func (d *Dispatcher) NotifyStatusUpdate(phone string, email string, status types.Status) []error {

	body := fmt.Sprintf("Your order status has been updated to: %s", status)

	var errs []error

	if phone != "" {
		if err := d.sms.SendSMS(phone, body); err != nil {
			errs = append(errs, fmt.Errorf("sms to %s: %w", phone, err))
		}
	}

	if email != "" {
		if err := d.email.SendEmail(email, statusUpdateSubject, body); err != nil {
			errs = append(errs, fmt.Errorf("email to %s: %w", email, err))
		}
	}

	return errs
}
