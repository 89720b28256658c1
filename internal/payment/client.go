package payment

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const chargeRequestTimeout = 10 * time.Second

const currencyUSD = "usd"

type Client struct {
	client *resty.Client
}

type Charge struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// ChargeError carries the provider's own error message so it can be surfaced
// to the caller.
type ChargeError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *ChargeError) Error() string {
	return e.Message
}

func NewClient(address string, secretKey string) *Client {

	client := resty.New().
		SetBaseURL(address).
		SetAuthToken(secretKey).
		SetTimeout(chargeRequestTimeout)

	return &Client{client: client}
}

// CreateCharge charges the card behind the source token. amountCents must be
// a positive integer number of cents.
func (c *Client) CreateCharge(amountCents int64, source string, description string) (*Charge, error) {

	var charge Charge
	var gatewayErr struct {
		Error struct {
			Type    string `json:"type"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	resp, err := c.client.R().
		SetFormData(map[string]string{
			"amount":      strconv.FormatInt(amountCents, 10),
			"currency":    currencyUSD,
			"source":      source,
			"description": description,
		}).
		SetResult(&charge).
		SetError(&gatewayErr).
		Post("/v1/charges")

	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w", &ChargeError{
			StatusCode: resp.StatusCode(),
			Type:       gatewayErr.Error.Type,
			Code:       gatewayErr.Error.Code,
			Message:    gatewayErr.Error.Message,
		})
	}
	return &charge, nil
}
