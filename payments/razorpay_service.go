package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/synthosphere/academy_backend/configs"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

type OrderRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens a Razorpay order for the given rupee amount. Razorpay
// expects the amount in paise.
func CreateOrder(amount float64) (*Order, error) {
	payload := OrderRequest{
		Amount:   int(amount * 100),
		Currency: "INR",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %v", err)
	}

	req, err := http.NewRequest("POST", razorpayBaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(config.Config("RAZORPAY_API_KEY"), config.Config("RAZORPAY_API_SECRET"))

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send order request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay order creation failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %v", err)
	}

	return &order, nil
}

// VerifyPaymentSignature checks the HMAC the gateway attaches to a completed
// payment against our API secret.
func VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return verifySignatureWith(config.Config("RAZORPAY_API_SECRET"), orderID, paymentID, signature)
}

func verifySignatureWith(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
