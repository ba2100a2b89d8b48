package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckoutSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Currency != "INR" || req.Reference != "ord-1" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(CheckoutResult{
			OrderRef:   req.Reference,
			PaymentRef: "pay-42",
			Signature:  "sig",
			Amount:     req.Amount,
		})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, time.Second)
	result, err := g.Checkout(CheckoutRequest{Amount: 450, Currency: "INR", Reference: "ord-1"})
	if err != nil {
		t.Fatal(err)
	}
	if result.PaymentRef != "pay-42" || result.Amount != 450 {
		t.Fatalf("result = %+v", result)
	}
}

func TestCheckoutDeclinedKeepsReasonVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"reason": "insufficient funds in wallet"})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, time.Second)
	_, err := g.Checkout(CheckoutRequest{Amount: 450, Currency: "INR", Reference: "ord-1"})

	var declined *FailureError
	if !errors.As(err, &declined) {
		t.Fatalf("err = %v, want *FailureError", err)
	}
	if declined.Reason != "insufficient funds in wallet" {
		t.Fatalf("Reason = %q", declined.Reason)
	}
}

func TestCheckoutNetworkError(t *testing.T) {
	g := NewGateway("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := g.Checkout(CheckoutRequest{Amount: 100, Currency: "INR", Reference: "ord-1"})
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var declined *FailureError
	if errors.As(err, &declined) {
		t.Fatal("transport errors must not look like declines")
	}
}
