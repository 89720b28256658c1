package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoronova/servicedesk/internal/types"
)

type smsRecorder struct {
	to   []string
	body []string
	err  error
}

func (r *smsRecorder) SendSMS(to string, body string) error {
	r.to = append(r.to, to)
	r.body = append(r.body, body)
	return r.err
}

type emailRecorder struct {
	to      []string
	subject []string
	body    []string
	err     error
}

func (r *emailRecorder) SendEmail(to string, subject string, body string) error {
	r.to = append(r.to, to)
	r.subject = append(r.subject, subject)
	r.body = append(r.body, body)
	return r.err
}

func TestNotifyStatusUpdate(t *testing.T) {

	testCases := []struct {
		name           string
		phone          string
		email          string
		smsErr         error
		emailErr       error
		expectedErrors int
	}{
		{name: "both channels", phone: "+79990000000", email: "a@b.com"},
		{name: "phone only", phone: "+79990000000"},
		{name: "email only", email: "a@b.com"},
		{name: "no contacts"},
		{name: "sms fails, email still sent", phone: "+79990000000", email: "a@b.com", smsErr: errors.New("boom"), expectedErrors: 1},
		{name: "both fail", phone: "+79990000000", email: "a@b.com", smsErr: errors.New("boom"), emailErr: errors.New("boom"), expectedErrors: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sms := &smsRecorder{err: tc.smsErr}
			email := &emailRecorder{err: tc.emailErr}
			d := NewDispatcher(sms, email)

			errs := d.NotifyStatusUpdate(tc.phone, tc.email, types.Status("In Progress"))

			assert.Len(t, errs, tc.expectedErrors)

			if tc.phone != "" {
				assert.Equal(t, []string{tc.phone}, sms.to)
				assert.Equal(t, []string{"Your order status has been updated to: In Progress"}, sms.body)
			} else {
				assert.Empty(t, sms.to)
			}

			if tc.email != "" {
				assert.Equal(t, []string{tc.email}, email.to)
				assert.Equal(t, []string{"Order Status Update"}, email.subject)
				assert.Equal(t, []string{"Your order status has been updated to: In Progress"}, email.body)
			} else {
				assert.Empty(t, email.to)
			}
		})
	}
}
