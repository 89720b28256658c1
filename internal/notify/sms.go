package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const smsRequestTimeout = 10 * time.Second

type SMSClient struct {
	client     *resty.Client
	accountSID string
	fromNumber string
}

type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

func NewSMSClient(address string, accountSID string, authToken string, fromNumber string) *SMSClient {

	client := resty.New().
		SetBaseURL(address).
		SetBasicAuth(accountSID, authToken).
		SetTimeout(smsRequestTimeout)

	return &SMSClient{
		client:     client,
		accountSID: accountSID,
		fromNumber: fromNumber,
	}
}

// SendSMS posts a message to the gateway with the configured sender number.
func (c *SMSClient) SendSMS(to string, body string) error {

	var gatewayErr struct {
		Message string `json:"message"`
	}

	resp, err := c.client.R().
		SetFormData(map[string]string{
			"To":   to,
			"From": c.fromNumber,
			"Body": body,
		}).
		SetError(&gatewayErr).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.accountSID))

	if err != nil {
		return fmt.Errorf("sms gateway request failed %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w", &GatewayError{StatusCode: resp.StatusCode(), Message: gatewayErr.Message})
	}
	return nil
}
