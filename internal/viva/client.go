package viva

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/consultingshop/checkout-service/internal/config"
)

var (
	ErrAuth = errors.New("gateway authentication failed")

	// ErrUnavailable marks transport-level failures (timeout, refused
	// connection). Callers treat these as transient and retry.
	ErrUnavailable = errors.New("gateway unreachable")
)

// tokenSkew is subtracted from the reported token lifetime so we never send
// a token that expires mid-flight.
const tokenSkew = 30 * time.Second

type environment struct {
	accounts string
	api      string
	checkout string
}

var environments = map[string]environment{
	"demo": {
		accounts: "https://demo-accounts.vivapayments.com",
		api:      "https://demo-api.vivapayments.com",
		checkout: "https://demo.vivapayments.com",
	},
	"live": {
		accounts: "https://accounts.vivapayments.com",
		api:      "https://api.vivapayments.com",
		checkout: "https://www.vivapayments.com",
	},
}

// Client talks to the hosted-checkout payment gateway. One client is bound to
// exactly one environment (demo or live), base URLs are never mixed.
type Client struct {
	logger       *slog.Logger
	http         *http.Client
	env          environment
	clientID     string
	clientSecret string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func New(logger *slog.Logger, cfg config.Viva) (*Client, error) {
	env, ok := environments[cfg.Env]
	if !ok {
		return nil, fmt.Errorf("unknown gateway environment %q", cfg.Env)
	}
	return &Client{
		logger:       logger.With(slog.String("client", "viva")),
		http:         &http.Client{Timeout: cfg.Timeout},
		env:          env,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}, nil
}

// authenticate exchanges the configured client credentials for a bearer token.
// Tokens are cached until shortly before expiry. Auth failures are fatal for
// the current request and not retried here.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.env.accounts+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		// transport failure, not a credential problem
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAuth, res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", ErrAuth, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuth)
	}

	c.token = body.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - tokenSkew)
	return c.token, nil
}

// CreateOrder creates a remote checkout order and returns the gateway-assigned
// order code together with the hosted payment page URL to redirect the buyer to.
func (c *Client) CreateOrder(ctx context.Context, sourceCode string, req CreateOrderRequest) (CreatedOrder, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return CreatedOrder{}, err
	}

	payload := map[string]any{
		"amount":       req.AmountCents,
		"sourceCode":   sourceCode,
		"merchantTrns": req.MerchantRef,
		"customerTrns": req.MerchantRef,
		"customer": map[string]any{
			"email":    req.CustomerEmail,
			"fullName": req.CustomerName,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return CreatedOrder{}, fmt.Errorf("marshal order payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.env.api+"/checkout/v2/orders", token, bytes.NewReader(data))
	if err != nil {
		return CreatedOrder{}, err
	}

	var created struct {
		OrderCode int64 `json:"orderCode"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return CreatedOrder{}, fmt.Errorf("decode order response: %w", err)
	}

	code := strconv.FormatInt(created.OrderCode, 10)
	return CreatedOrder{
		OrderCode:   code,
		CheckoutURL: c.env.checkout + "/web/checkout?ref=" + code,
	}, nil
}

// GetOrder fetches the remote order state. A 404 is mapped to (nil, nil):
// the gateway does not know the order, which is a distinct outcome from a
// transport failure.
func (c *Client) GetOrder(ctx context.Context, orderCode string) (*OrderState, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.env.api+"/api/orders/"+orderCode, nil)
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{Status: res.StatusCode, Body: string(body)}
	}

	var state OrderState
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &state, nil
}

// GetTransaction fetches a transaction by id. There is no "not found" case
// here, the caller already holds an id the gateway issued.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (TransactionState, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return TransactionState{}, err
	}

	body, err := c.do(ctx, http.MethodGet, c.env.api+"/checkout/v2/transactions/"+transactionID, token, nil)
	if err != nil {
		return TransactionState{}, err
	}

	var state TransactionState
	if err := json.Unmarshal(body, &state); err != nil {
		return TransactionState{}, fmt.Errorf("decode transaction response: %w", err)
	}
	return state, nil
}

func (c *Client) do(ctx context.Context, method, url, token string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{Status: res.StatusCode, Body: string(data)}
	}
	return data, nil
}
