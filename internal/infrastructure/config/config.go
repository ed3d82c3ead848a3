package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPixExpirationMinutes = 30
	defaultMercadoPagoBaseURL   = "https://api.mercadopago.com"
)

// Pix carries the Mercado Pago credentials and PIX settings.
//
// Loaded once at startup and passed explicitly into the gateway and the
// payment use case; nothing reads these env vars after boot.
//
// Supported env vars:
//   - MERCADOPAGO_ACCESS_TOKEN
//   - MERCADOPAGO_PUBLIC_KEY
//   - MERCADOPAGO_BASE_URL (default: https://api.mercadopago.com)
//   - PIX_EXPIRATION_MINUTES (default: 30)

type Pix struct {
	AccessToken       string
	PublicKey         string
	BaseURL           string
	ExpirationMinutes int
}

func LoadPixFromEnv() Pix {
	return Pix{
		AccessToken:       strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PublicKey:         strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
		BaseURL:           getenvDefault("MERCADOPAGO_BASE_URL", defaultMercadoPagoBaseURL),
		ExpirationMinutes: getenvIntDefault("PIX_EXPIRATION_MINUTES", defaultPixExpirationMinutes),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("[config] invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}
