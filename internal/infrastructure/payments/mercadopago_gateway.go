package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"play12/internal/infrastructure/config"
	"play12/internal/usecase/interfaces"

	"github.com/google/uuid"
	sdkconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	preferencesPath    = "/checkout/preferences"
	gatewayCallTimeout = 30 * time.Second
)

// MercadoPagoGateway creates checkout preferences against the Mercado
// Pago REST API.
//
// Each call is a single authenticated POST with a fresh idempotency key;
// there is no retry. Non-2xx answers surface as *interfaces.GatewayError
// with the raw body; transport failures surface as
// interfaces.ErrGatewayUnavailable.

type MercadoPagoGateway struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.Pix) (*MercadoPagoGateway, error) {
	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mercadopago.com"
	}
	log.Printf("[payment][gateway] Mercado Pago preference client initialized base_url=%s", baseURL)

	return &MercadoPagoGateway{
		httpClient:  &http.Client{Timeout: gatewayCallTimeout},
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return interfaces.PreferenceResponse{}, err
	}
	log.Printf("[payment][gateway] create preference start external_reference=%s payload_len=%d", req.ExternalReference, len(body))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+preferencesPath, bytes.NewReader(body))
	if err != nil {
		return interfaces.PreferenceResponse{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] transport failure external_reference=%s err=%v", req.ExternalReference, err)
		return interfaces.PreferenceResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[payment][gateway] reading response failed external_reference=%s err=%v", req.ExternalReference, err)
		return interfaces.PreferenceResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[payment][gateway] provider error external_reference=%s status=%d body=%s", req.ExternalReference, resp.StatusCode, raw)
		return interfaces.PreferenceResponse{}, &interfaces.GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out interfaces.PreferenceResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[payment][gateway] response decode failed external_reference=%s err=%v", req.ExternalReference, err)
		return interfaces.PreferenceResponse{}, fmt.Errorf("decoding preference response: %w", err)
	}

	log.Printf("[payment][gateway] create preference success external_reference=%s preference=%s", req.ExternalReference, out.ID)
	return out, nil
}

// MercadoPagoStatusSource resolves provider-side payment status via the
// official SDK. Webhook processing uses it to learn whether a PIX charge
// was approved before touching the local record.

type MercadoPagoStatusSource struct {
	client payment.Client
}

var _ interfaces.IPaymentStatusSource = (*MercadoPagoStatusSource)(nil)

func NewMercadoPagoStatusSource(cfg config.Pix) (*MercadoPagoStatusSource, error) {
	if cfg.AccessToken == "" {
		log.Printf("[payment][status-source] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := sdkconfig.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][status-source] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][status-source] Mercado Pago payment client initialized")

	return &MercadoPagoStatusSource{client: payment.NewClient(sdkCfg)}, nil
}

func (s *MercadoPagoStatusSource) GetPaymentStatus(ctx context.Context, providerPaymentID string) (interfaces.ProviderPaymentStatus, error) {
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.ProviderPaymentStatus{}, fmt.Errorf("invalid provider payment id %q: %w", providerPaymentID, err)
	}

	resp, err := s.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][status-source] sdk get failed provider_payment_id=%d err=%v", id, err)
		return interfaces.ProviderPaymentStatus{}, err
	}
	log.Printf("[payment][status-source] resolved provider_payment_id=%d status=%s external_reference=%s", id, resp.Status, resp.ExternalReference)

	return interfaces.ProviderPaymentStatus{
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
