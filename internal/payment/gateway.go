package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LineItem is the metadata attached to a checkout request.
type LineItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest is the payload posted to the external gateway.
type CheckoutRequest struct {
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	Reference string     `json:"reference"`
	LineItems []LineItem `json:"line_items,omitempty"`
}

// CheckoutResult is the gateway's success payload.
type CheckoutResult struct {
	OrderRef   string  `json:"order_ref"`
	PaymentRef string  `json:"payment_ref"`
	Signature  string  `json:"signature"`
	Amount     float64 `json:"amount"`
}

// FailureError carries the gateway's failure reason verbatim. No automatic
// retry: the user must re-initiate checkout.
type FailureError struct {
	Reason string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// Gateway invokes the opaque external checkout service.
type Gateway struct {
	client *http.Client
	url    string
}

// NewGateway creates a gateway client against url. timeout bounds the whole
// call; zero means 15 seconds.
func NewGateway(url string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Gateway{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Checkout posts the request and returns the gateway's result. A declined
// payment comes back as *FailureError with the reason string untouched.
func (g *Gateway) Checkout(req CheckoutRequest) (*CheckoutResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode checkout request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gwErr struct {
			Reason string `json:"reason"`
			Error  string `json:"error"`
		}
		if json.Unmarshal(respBytes, &gwErr) == nil {
			if gwErr.Reason != "" {
				return nil, &FailureError{Reason: gwErr.Reason}
			}
			if gwErr.Error != "" {
				return nil, &FailureError{Reason: gwErr.Error}
			}
		}
		return nil, &FailureError{Reason: string(respBytes)}
	}

	var result CheckoutResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	return &result, nil
}
