package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"tripavail/config"
	"tripavail/infras/otel"
	"tripavail/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	otelScopeName        = "processor"
	minorUnitExponent    = 2
	maxErrorBodyBytes    = 4 << 10
)

type httpProcessor struct {
	client  *http.Client
	baseURL string
	secret  string
	otel    otel.Otel
}

// NewHTTP talks to a card processor exposing manual-capture payment intents
// over JSON. Amounts travel in minor units.
func NewHTTP(cfg *config.Config, otel otel.Otel) Processor {
	timeout := time.Duration(cfg.Payment.Processor.TimeoutSeconds) * time.Second

	return &httpProcessor{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimSuffix(cfg.Payment.Processor.BaseURL, "/"),
		secret:  cfg.Payment.Processor.SecretKey,
		otel:    otel,
	}
}

type intentPayload struct {
	ID            string `json:"id,omitempty"`
	Status        string `json:"status,omitempty"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	CaptureMethod string `json:"capture_method,omitempty"`
	Reference     string `json:"reference,omitempty"`
}

type refundPayload struct {
	ID       string `json:"id,omitempty"`
	IntentID string `json:"intent_id,omitempty"`
	Amount   int64  `json:"amount"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (p *httpProcessor) Authorize(ctx context.Context, req AuthorizeRequest) (res Intent, err error) {
	ctx, scope := p.otel.NewScope(ctx, otelScopeName, otelScopeName+".Authorize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := intentPayload{
		Amount:        toMinor(req.Amount),
		Currency:      strings.ToLower(req.Currency),
		PaymentMethod: req.PaymentMethodID,
		CaptureMethod: "manual",
		Reference:     req.Reference,
	}

	var out intentPayload
	if err = p.do(ctx, http.MethodPost, "/v1/payment_intents", req.IdempotencyKey, body, &out); err != nil {
		return res, err
	}

	return out.toIntent(), nil
}

func (p *httpProcessor) Capture(ctx context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (res Intent, err error) {
	ctx, scope := p.otel.NewScope(ctx, otelScopeName, otelScopeName+".Capture")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var out intentPayload

	endpoint := fmt.Sprintf("/v1/payment_intents/%s/capture", url.PathEscape(intentID))
	if err = p.do(ctx, http.MethodPost, endpoint, idempotencyKey, intentPayload{Amount: toMinor(amount)}, &out); err != nil {
		return res, err
	}

	return out.toIntent(), nil
}

func (p *httpProcessor) Refund(ctx context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (res Refund, err error) {
	ctx, scope := p.otel.NewScope(ctx, otelScopeName, otelScopeName+".Refund")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var out refundPayload
	if err = p.do(ctx, http.MethodPost, "/v1/refunds", idempotencyKey, refundPayload{IntentID: intentID, Amount: toMinor(amount)}, &out); err != nil {
		return res, err
	}

	return Refund{
		ID:       out.ID,
		IntentID: out.IntentID,
		Amount:   fromMinor(out.Amount),
	}, nil
}

func (p *httpProcessor) do(ctx context.Context, method, path, idempotencyKey string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode processor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build processor request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+p.secret)

	if idempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, idempotencyKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to call payment processor")

		return fmt.Errorf("failed to call payment processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorPayload

		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		_ = json.Unmarshal(raw, &apiErr)

		log.Error().Int("status", resp.StatusCode).Str("path", path).Str("code", apiErr.Code).Msg("payment processor rejected request")

		switch resp.StatusCode {
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %s", ErrDeclined, apiErr.Message)
		case http.StatusNotFound:
			return ErrIntentNotFound
		default:
			return fmt.Errorf("payment processor returned %d: %s", resp.StatusCode, apiErr.Message)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode processor response: %w", err)
	}

	return nil
}

func (p intentPayload) toIntent() Intent {
	return Intent{
		ID:       p.ID,
		Status:   p.Status,
		Amount:   fromMinor(p.Amount),
		Currency: strings.ToUpper(p.Currency),
	}
}

func toMinor(amount decimal.Decimal) int64 {
	return amount.Shift(minorUnitExponent).Round(0).IntPart()
}

func fromMinor(amount int64) decimal.Decimal {
	return decimal.New(amount, -minorUnitExponent)
}
