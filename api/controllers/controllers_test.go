package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	"github.com/taazafoods/chatbot-backend/pkg/billing"
)

type stubBilling struct {
	result billing.Result
	err    error
	calls  int
}

func (s *stubBilling) Submit(ctx context.Context, payload any) (billing.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubCatalog struct {
	categories json.RawMessage
	items      json.RawMessage
	err        error
}

func (s *stubCatalog) Categories(ctx context.Context) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func (s *stubCatalog) Items(ctx context.Context, category string) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func newTestService(t *testing.T, submitter sessionsvc.BillingSubmitter) sessionsvc.Service {
	t.Helper()
	store := sessionsvc.NewStore(time.Hour, time.Second, nil)
	svc, err := sessionsvc.NewService(store, submitter, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func createSession(t *testing.T, svc sessionsvc.Service) string {
	t.Helper()
	snap, err := svc.Create(context.Background(), sessionsvc.CreateInput{
		Name:    "Ali",
		Mobile:  "3001234567",
		Address: "House 1 St 2",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return snap.ID
}

func decodeData(t *testing.T, body []byte, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, body)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decode data: %v (%s)", err, envelope.Data)
	}
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, body)
	}
	return envelope.Error.Code
}

func acceptedBilling() *stubBilling {
	return &stubBilling{result: billing.Result{Status: http.StatusCreated, Body: []byte(`{"booking_id":"bk-1"}`)}}
}
