// Package sms dispatches OTP codes through the 2Factor SMS gateway.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"freight-marketplace/internal/config"
	appErrors "freight-marketplace/pkg/errors"
)

type TwoFactorClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTwoFactorClient(cfg *config.SMSConfig) *TwoFactorClient {
	return &TwoFactorClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// twoFactorResponse is the provider's JSON reply. Failed sends can arrive
// with HTTP 200 and Status != "Success", so both must be checked.
type twoFactorResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

func (c *TwoFactorClient) SendOTP(ctx context.Context, mobileNumber, code string) error {
	url := fmt.Sprintf("%s/%s/SMS/%s/%s", c.baseURL, c.apiKey, mobileNumber, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return appErrors.NewAppError("SMS_DELIVERY", "failed to reach SMS provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return appErrors.NewAppError("SMS_DELIVERY",
			fmt.Sprintf("SMS provider returned status %d", resp.StatusCode),
			appErrors.ErrDeliveryFailed)
	}

	var body twoFactorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return appErrors.NewAppError("SMS_DELIVERY", "failed to decode SMS provider response", err)
	}
	if body.Status != "Success" {
		return appErrors.NewAppError("SMS_DELIVERY", body.Details, appErrors.ErrDeliveryFailed)
	}

	return nil
}
