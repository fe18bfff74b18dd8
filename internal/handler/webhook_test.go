package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubUpgrader struct {
	upgraded []uuid.UUID
	err      error
}

func (s *stubUpgrader) UpgradeToChirpyRed(_ context.Context, userID uuid.UUID) error {
	s.upgraded = append(s.upgraded, userID)
	return s.err
}

func newWebhookTestRouter(svc *stubUpgrader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/polka/webhooks", NewPolkaWebhookHandler(svc, "polka-key").Handle)
	return r
}

func postWebhook(r *gin.Engine, apiKey, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/polka/webhooks", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "ApiKey "+apiKey)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPolkaWebhookUpgrades(t *testing.T) {
	svc := &stubUpgrader{}
	r := newWebhookTestRouter(svc)
	userID := uuid.New()

	w := postWebhook(r, "polka-key", `{"event":"user.upgraded","data":{"userId":"`+userID.String()+`"}}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(svc.upgraded) != 1 || svc.upgraded[0] != userID {
		t.Fatalf("expected upgrade for %s, got %v", userID, svc.upgraded)
	}
}

func TestPolkaWebhookIgnoresOtherEvents(t *testing.T) {
	svc := &stubUpgrader{}
	r := newWebhookTestRouter(svc)

	w := postWebhook(r, "polka-key", `{"event":"user.payment_failed","data":{"userId":"`+uuid.New().String()+`"}}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(svc.upgraded) != 0 {
		t.Fatalf("expected no upgrades, got %v", svc.upgraded)
	}
}

func TestPolkaWebhookWrongKey(t *testing.T) {
	svc := &stubUpgrader{}
	r := newWebhookTestRouter(svc)

	w := postWebhook(r, "wrong-key", `{"event":"user.upgraded","data":{"userId":"`+uuid.New().String()+`"}}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(svc.upgraded) != 0 {
		t.Fatalf("expected no upgrades, got %v", svc.upgraded)
	}
}

func TestPolkaWebhookMissingKey(t *testing.T) {
	svc := &stubUpgrader{}
	r := newWebhookTestRouter(svc)

	w := postWebhook(r, "", `{"event":"user.upgraded","data":{"userId":"`+uuid.New().String()+`"}}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
