package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// webhookTolerance bounds how stale a webhook timestamp may be.
const webhookTolerance = 5 * time.Minute

// identityEvent is the payload the identity provider sends when an HR user
// account changes.
type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// handleIdentityWebhook keeps staff accounts in sync with the external
// identity provider. Signatures follow the svix scheme: HMAC-SHA256 over
// "id.timestamp.body" with a base64 secret, sent as space-separated
// "v1,<sig>" entries.
func (s *Server) handleIdentityWebhook(w http.ResponseWriter, r *http.Request) {
	if s.webhookSecret == "" {
		s.errorResponse(w, http.StatusNotImplemented, "Webhook not configured")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	msgID := r.Header.Get("svix-id")
	timestamp := r.Header.Get("svix-timestamp")
	signatures := r.Header.Get("svix-signature")
	if msgID == "" || timestamp == "" || signatures == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing signature headers")
		return
	}

	if !s.verifyWebhookSignature(msgID, timestamp, body, signatures) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var event identityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx := r.Context()
	switch event.Type {
	case "user.created", "user.updated":
		email := ""
		if len(event.Data.EmailAddresses) > 0 {
			email = event.Data.EmailAddresses[0].EmailAddress
		}
		name := strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
		if event.Data.ID == "" || email == "" {
			s.errorResponse(w, http.StatusBadRequest, "Missing user id or email")
			return
		}
		if _, err := s.db.UpsertStaffUserByExternalID(ctx, event.Data.ID, email, name); err != nil {
			log.Printf("[WEBHOOK] upsert failed for %s: %v", event.Data.ID, err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to sync user")
			return
		}
	case "user.deleted":
		if err := s.db.DeleteStaffUserByExternalID(ctx, event.Data.ID); err != nil {
			log.Printf("[WEBHOOK] delete failed for %s: %v", event.Data.ID, err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to sync user")
			return
		}
	default:
		// Unknown events are acknowledged so the provider stops retrying.
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// verifyWebhookSignature checks the svix signature and timestamp freshness.
func (s *Server) verifyWebhookSignature(msgID, timestamp string, body []byte, signatures string) bool {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	age := time.Since(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return false
	}

	secret := strings.TrimPrefix(s.webhookSecret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, entry := range strings.Fields(signatures) {
		version, sig, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return true
		}
	}
	return false
}
