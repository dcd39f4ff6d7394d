package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookingnest-payments/config"
	"bookingnest-payments/internal/core/domain"
	"bookingnest-payments/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	defaultTimeout = 15 * time.Second
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PaymentGateway against the PayPal REST API.
// Every call runs under its own timeout; a hung remote call surfaces as a
// context deadline error rather than blocking the request forever.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	timeout      time.Duration
	httpClient   HTTPClient
	log          zerolog.Logger
}

// NewClient creates a gateway client for the configured environment.
func NewClient(cfg config.PayPalConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	base := sandboxBaseURL
	if cfg.Environment == "live" {
		base = liveBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:      base,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		timeout:      timeout,
		httpClient:   httpClient,
		log:          log,
	}
}

var _ ports.PaymentGateway = (*Client)(nil)

// AcquireAccessToken performs the client-credential exchange. The token is
// not cached; callers re-acquire one per operation.
func (c *Client) AcquireAccessToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("paypal: token endpoint rejected credentials")
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return tok.AccessToken, nil
}

// CreateOrder builds an intent-to-capture order for the given amount.
func (c *Client) CreateOrder(ctx context.Context, amount domain.Money) (domain.OrderHandle, error) {
	token, err := c.AcquireAccessToken(ctx)
	if err != nil {
		return domain.OrderHandle{}, err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": amount.Currency,
					"value":         amount.Value(),
				},
			},
		},
	}

	body, status, err := c.doJSON(ctx, http.MethodPost, "/v2/checkout/orders", token, payload)
	if err != nil {
		return domain.OrderHandle{}, err
	}
	if status < 200 || status >= 300 {
		c.log.Warn().Int("status", status).RawJSON("body", body).Msg("paypal: create order rejected")
		return domain.OrderHandle{}, fmt.Errorf("create order returned %d", status)
	}

	var order struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &order); err != nil {
		return domain.OrderHandle{}, fmt.Errorf("decoding order response: %w", err)
	}
	if order.ID == "" {
		return domain.OrderHandle{}, fmt.Errorf("order response missing id")
	}
	return domain.OrderHandle{OrderID: order.ID}, nil
}

// CaptureOrder finalizes a previously created order. The gateway's status
// is returned as a normal result; only transport or HTTP failures error.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*domain.CaptureResult, error) {
	token, err := c.AcquireAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID)
	body, status, err := c.doJSON(ctx, http.MethodPost, path, token, map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.log.Warn().Int("status", status).Str("order_id", orderID).Msg("paypal: capture rejected")
		return nil, fmt.Errorf("capture order returned %d", status)
	}

	var capture struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &capture); err != nil {
		return nil, fmt.Errorf("decoding capture response: %w", err)
	}
	return &domain.CaptureResult{Status: capture.Status, Raw: body}, nil
}

// SendPayout submits a single-item payout batch. A JSON response without a
// batch_header is a gateway rejection and is surfaced verbatim.
func (c *Client) SendPayout(ctx context.Context, token string, p ports.PayoutInstruction) (*domain.PayoutResult, error) {
	payload := map[string]interface{}{
		"sender_batch_header": map[string]string{
			"sender_batch_id": p.BatchID,
			"email_subject":   p.EmailSubject,
			"email_message":   p.EmailMessage,
		},
		"items": []map[string]interface{}{
			{
				"recipient_type": "EMAIL",
				"amount": map[string]string{
					"value":    p.Amount.Value(),
					"currency": p.Amount.Currency,
				},
				"receiver":       p.RecipientEmail,
				"note":           p.Note,
				"sender_item_id": p.ItemID,
			},
		},
	}

	body, status, err := c.doJSON(ctx, http.MethodPost, "/v1/payments/payouts", token, payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		BatchHeader json.RawMessage `json:"batch_header"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("payout returned %d with unreadable body: %w", status, err)
	}
	if result.BatchHeader == nil {
		c.log.Warn().Int("status", status).RawJSON("body", body).Msg("paypal: payout rejected")
		return &domain.PayoutResult{Rejection: body}, nil
	}
	return &domain.PayoutResult{BatchHeader: result.BatchHeader}, nil
}

// GetPayoutStatus fetches the raw status payload of a submitted batch.
func (c *Client) GetPayoutStatus(ctx context.Context, token string, batchID string) (json.RawMessage, error) {
	path := "/v1/payments/payouts/" + batchID
	body, _, err := c.doJSON(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// doJSON issues one authenticated JSON request under the per-call timeout
// and returns the response body and status code.
func (c *Client) doJSON(ctx context.Context, method, path, token string, payload interface{}) (json.RawMessage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response: %w", err)
	}
	return body, resp.StatusCode, nil
}
