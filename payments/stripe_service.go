package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	config "github.com/deepak4044/service_marketplace/configs"
)

type ChargeResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type stripeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChargeAdminStripeAccount charges a card token against the platform Stripe
// account. Synchronous, bounded by the client timeout, never retried here: a
// declined or timed-out charge is surfaced to the caller as an error.
func ChargeAdminStripeAccount(amount decimal.Decimal, token string) (*ChargeResult, error) {
	secretKey := config.Config("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}

	form := url.Values{}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", "usd")
	form.Set("source", token)
	form.Set("description", "Wallet recharge")

	req, err := http.NewRequest("POST", "https://api.stripe.com/v1/charges", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe charge request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var stripeErr stripeErrorResponse
		if json.Unmarshal(body, &stripeErr) == nil && stripeErr.Error.Message != "" {
			return nil, fmt.Errorf("%s", stripeErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe charge failed, status: %s", resp.Status)
	}

	var result ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Status != "succeeded" {
		return nil, fmt.Errorf("stripe charge not completed, status: %s", result.Status)
	}

	return &result, nil
}
