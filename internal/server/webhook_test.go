package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testWebhookSecret = "whsec_dGVzdC1zZWNyZXQta2V5"

func signWebhook(t *testing.T, secret, msgID, timestamp string, body []byte) string {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		t.Fatalf("bad test secret: %v", err)
	}
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	s := &Server{webhookSecret: testWebhookSecret}
	body := []byte(`{"type": "user.created"}`)
	msgID := "msg_123"
	now := strconv.FormatInt(time.Now().Unix(), 10)

	t.Run("valid signature", func(t *testing.T) {
		sig := signWebhook(t, testWebhookSecret, msgID, now, body)
		assert.True(t, s.verifyWebhookSignature(msgID, now, body, sig))
	})

	t.Run("multiple entries with one valid", func(t *testing.T) {
		sig := signWebhook(t, testWebhookSecret, msgID, now, body)
		assert.True(t, s.verifyWebhookSignature(msgID, now, body, "v2,abc "+sig))
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := signWebhook(t, "whsec_b3RoZXItc2VjcmV0", msgID, now, body)
		assert.False(t, s.verifyWebhookSignature(msgID, now, body, sig))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := signWebhook(t, testWebhookSecret, msgID, now, body)
		assert.False(t, s.verifyWebhookSignature(msgID, now, []byte(`{"type": "user.deleted"}`), sig))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		old := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
		sig := signWebhook(t, testWebhookSecret, msgID, old, body)
		assert.False(t, s.verifyWebhookSignature(msgID, old, body, sig))
	})

	t.Run("future timestamp", func(t *testing.T) {
		future := strconv.FormatInt(time.Now().Add(10*time.Minute).Unix(), 10)
		sig := signWebhook(t, testWebhookSecret, msgID, future, body)
		assert.False(t, s.verifyWebhookSignature(msgID, future, body, sig))
	})

	t.Run("garbage timestamp", func(t *testing.T) {
		assert.False(t, s.verifyWebhookSignature(msgID, "not-a-number", body, "v1,abc"))
	})

	t.Run("no v1 entry", func(t *testing.T) {
		assert.False(t, s.verifyWebhookSignature(msgID, now, body, "v2,abc v0,def"))
	})
}

func TestHandleIdentityWebhook_NotConfigured(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	s.handleIdentityWebhook(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHandleIdentityWebhook_MissingHeaders(t *testing.T) {
	s := &Server{webhookSecret: testWebhookSecret}

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader("{}"))
	req.Header.Set("svix-id", "msg_123")
	// No timestamp or signature headers.
	rec := httptest.NewRecorder()
	s.handleIdentityWebhook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIdentityWebhook_BadSignature(t *testing.T) {
	s := &Server{webhookSecret: testWebhookSecret}

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader("{}"))
	req.Header.Set("svix-id", "msg_123")
	req.Header.Set("svix-timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("svix-signature", "v1,bm90LXRoZS1yaWdodC1zaWduYXR1cmU=")
	rec := httptest.NewRecorder()
	s.handleIdentityWebhook(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleIdentityWebhook_MissingUserFields(t *testing.T) {
	s := &Server{webhookSecret: testWebhookSecret}
	body := []byte(`{"type": "user.created", "data": {"id": "", "email_addresses": []}}`)
	now := strconv.FormatInt(time.Now().Unix(), 10)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(string(body)))
	req.Header.Set("svix-id", "msg_123")
	req.Header.Set("svix-timestamp", now)
	req.Header.Set("svix-signature", signWebhook(t, testWebhookSecret, "msg_123", now, body))
	rec := httptest.NewRecorder()
	s.handleIdentityWebhook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIdentityWebhook_UnknownEventAcked(t *testing.T) {
	s := &Server{webhookSecret: testWebhookSecret}
	body := []byte(`{"type": "session.created", "data": {}}`)
	now := strconv.FormatInt(time.Now().Unix(), 10)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(string(body)))
	req.Header.Set("svix-id", "msg_123")
	req.Header.Set("svix-timestamp", now)
	req.Header.Set("svix-signature", signWebhook(t, testWebhookSecret, "msg_123", now, body))
	rec := httptest.NewRecorder()
	s.handleIdentityWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
