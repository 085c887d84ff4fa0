// Package middleware provides request-level checks for inbound webhooks.
package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// SignatureMiddleware verifies the X-Hub-Signature-256 header the platform
// attaches to webhook POST bodies.
type SignatureMiddleware struct {
	appSecret string
}

// NewSignatureMiddleware creates a signature verification middleware.
func NewSignatureMiddleware(appSecret string) *SignatureMiddleware {
	return &SignatureMiddleware{appSecret: appSecret}
}

// Verify rejects requests whose body HMAC does not match the header.
// When no app secret is configured the check is skipped entirely.
func (m *SignatureMiddleware) Verify(c fiber.Ctx) error {
	if m.appSecret == "" {
		return c.Next()
	}

	header := c.Get("X-Hub-Signature-256")
	expected, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "missing payload signature")
	}

	mac := hmac.New(sha256.New, []byte(m.appSecret))
	mac.Write(c.Body())
	computed := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(computed), []byte(expected)) {
		return fiber.NewError(fiber.StatusForbidden, "invalid payload signature")
	}

	return c.Next()
}
