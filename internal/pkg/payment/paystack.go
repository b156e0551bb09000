package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/pkg/helpers"
)

// DefaultBaseURL is the public Paystack API
const DefaultBaseURL = "https://api.paystack.co"

// PaystackConfig configures the REST client
type PaystackConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
	Retry     helpers.RetryPolicy
}

// PaystackClient implements Gateway against the Paystack transaction API
type PaystackClient struct {
	cfg    PaystackConfig
	http   *http.Client
	logger zerolog.Logger
}

// NewPaystackClient creates a client; httpClient may be nil
func NewPaystackClient(cfg PaystackConfig, httpClient *http.Client, logger zerolog.Logger) *PaystackClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PaystackClient{cfg: cfg, http: httpClient, logger: logger}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeBody struct {
	Email       string            `json:"email"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string          `json:"status"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference"`
	Metadata  json.RawMessage `json:"metadata"`
}

// metadata decodes the echoed metadata object. Paystack sends "" or 0 when
// none was attached; those yield nil.
func (d verifyData) metadata() map[string]string {
	var raw map[string]interface{}
	if len(d.Metadata) == 0 || json.Unmarshal(d.Metadata, &raw) != nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return out
}

// statusError is a gateway answer that was not a success: a non-2xx status,
// or a 2xx envelope with status=false
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrGateway, e.code, e.message)
}

// rejected reports whether the gateway refused the request rather than failed
func (e *statusError) rejected() bool {
	return e.code < http.StatusInternalServerError
}

func (e *statusError) Unwrap() []error {
	if e.rejected() {
		return []error{ErrRejected, ErrGateway}
	}
	return []error{ErrGateway}
}

// Initialize starts a transaction. It is not retried: a second attempt could
// create a second pending transaction.
func (c *PaystackClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	body := initializeBody{
		Email:       req.Email,
		Amount:      strconv.FormatInt(req.AmountMinor, 10),
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}

	var data initializeData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		c.logger.Error().Err(err).Str("reference", req.Reference).Msg("Payment initialization failed")
		return nil, err
	}
	if data.AuthorizationURL == "" {
		return nil, fmt.Errorf("%w: missing authorization_url", ErrGateway)
	}

	return &InitializeResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// Verify fetches the transaction status for reference, retrying transport
// failures and 5xx responses under the configured policy.
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrGateway)
	}

	var data verifyData
	attempt := 0
	err := helpers.Retry(ctx, c.cfg.Retry, func() error {
		attempt++
		err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &data)
		if err == nil {
			return nil
		}
		var se *statusError
		if errors.As(err, &se) && se.rejected() {
			return helpers.Permanent(err)
		}
		c.logger.Warn().Err(err).Int("attempt", attempt).Str("reference", reference).Msg("Payment verification attempt failed")
		return err
	})
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		Status:      data.Status,
		AmountMinor: data.Amount,
		Currency:    data.Currency,
		Reference:   data.Reference,
		Metadata:    data.metadata(),
	}, nil
}

func (c *PaystackClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &statusError{code: resp.StatusCode, message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrGateway, decodeErr)
	}
	if !env.Status {
		return &statusError{code: resp.StatusCode, message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: malformed data: %v", ErrGateway, err)
		}
	}
	return nil
}
