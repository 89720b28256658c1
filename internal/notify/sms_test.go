package notify

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendSMS(t *testing.T) {

	testCases := []struct {
		name            string
		body            string
		code            int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"sid": "SM1", "status": "queued"}`,
			code: http.StatusCreated,
		},
		{
			name:            "invalid number",
			body:            `{"code": 21211, "message": "The 'To' number is not a valid phone number.", "status": 400}`,
			code:            http.StatusBadRequest,
			expectedMessage: "The 'To' number is not a valid phone number.",
		},
		{
			name:            "auth error",
			body:            `{"code": 20003, "message": "Authentication Error - invalid username", "status": 401}`,
			code:            http.StatusUnauthorized,
			expectedMessage: "Authentication Error - invalid username",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

				username, password, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "AC123", username)
				assert.Equal(t, "token", password)

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "+79990000000", r.PostForm.Get("To"))
				assert.Equal(t, "+15005550006", r.PostForm.Get("From"))
				assert.Equal(t, "Your order status has been updated to: In Progress", r.PostForm.Get("Body"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.code)
				fmt.Fprint(w, tc.body)
			}))
			defer svr.Close()

			c := NewSMSClient(svr.URL, "AC123", "token", "+15005550006")
			err := c.SendSMS("+79990000000", "Your order status has been updated to: In Progress")

			if tc.expectedMessage == "" {
				assert.NoError(t, err)
			} else {
				var gatewayErr *GatewayError
				assert.True(t, errors.As(err, &gatewayErr))
				assert.Equal(t, tc.expectedMessage, gatewayErr.Message)
				assert.Equal(t, tc.code, gatewayErr.StatusCode)
			}
		})
	}
}
