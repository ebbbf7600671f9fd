package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ojaledger/ojaledger/pkg/audio/normalize"
	"github.com/ojaledger/ojaledger/pkg/audio/wav"
	"github.com/ojaledger/ojaledger/pkg/extract"
	"github.com/ojaledger/ojaledger/pkg/intent"
	"github.com/ojaledger/ojaledger/pkg/kv"
	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
	"github.com/ojaledger/ojaledger/pkg/pipeline"
	"github.com/ojaledger/ojaledger/pkg/respond"
)

type stubTranscriber struct {
	text string
	err  error
}

func (s stubTranscriber) Transcribe(context.Context, []byte, lang.Language) (string, error) {
	return s.text, s.err
}

type stubClassifier struct{ label intent.Intent }

func (s stubClassifier) Classify(context.Context, string) (intent.Intent, error) {
	return s.label, nil
}

func newTestServer(t *testing.T, transcript string, label intent.Intent) (*Server, *ledger.Store) {
	t.Helper()
	mem := kv.NewMemory()
	t.Cleanup(func() { mem.Close() })
	composer, err := respond.NewComposer()
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	store := ledger.NewStore(mem)
	orch := &pipeline.Orchestrator{
		Normalizer:  &normalize.Normalizer{Dir: t.TempDir()},
		Transcriber: stubTranscriber{text: transcript},
		Classifier:  stubClassifier{label: label},
		Extractor:   extract.PatternExtractor{},
		Ledger:      store,
		Composer:    composer,
	}
	return New(orch, nil), store
}

func testUpload() []byte {
	return wav.Encode(make([]byte, 3200), 16000)
}

func TestCommandEndpoint(t *testing.T) {
	srv, store := newTestServer(t, "Ada paid 2000", intent.LogTransaction)

	req := httptest.NewRequest("POST", "/v1/commands?language=en", bytes.NewReader(testUpload()))
	req.Header.Set(OwnerHeader, "owner-1")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var resp commandResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Intent != intent.LogTransaction || len(resp.Records) != 1 {
		t.Errorf("response = %+v, want one logged transaction", resp)
	}
	if resp.Text == "" {
		t.Error("response has no text")
	}

	records, err := store.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].Owner != "owner-1" {
		t.Errorf("persisted records = %+v", records)
	}
}

func TestCommandMultipart(t *testing.T) {
	srv, _ := newTestServer(t, "Ada paid 2000", intent.LogTransaction)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("audio", "note.wav")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(testUpload())
	mw.Close()

	req := httptest.NewRequest("POST", "/v1/commands?language=ig", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(OwnerHeader, "owner-1")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
}

func TestCommandBadAudio(t *testing.T) {
	srv, _ := newTestServer(t, "anything", intent.LogTransaction)

	req := httptest.NewRequest("POST", "/v1/commands", bytes.NewReader([]byte("garbage")))
	req.Header.Set(OwnerHeader, "owner-1")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text == "" {
		t.Error("input-error response has no apology text")
	}
	if resp.Error != "unusable input" {
		t.Errorf("error field = %q, want the generic message", resp.Error)
	}
}

func TestCommandBackendDown(t *testing.T) {
	srv, _ := newTestServer(t, "anything", intent.LogTransaction)
	srv.orch.Transcriber = stubTranscriber{err: errors.New("asr: connection refused to 10.0.0.7")}

	req := httptest.NewRequest("POST", "/v1/commands", bytes.NewReader(testUpload()))
	req.Header.Set(OwnerHeader, "owner-1")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "backend unavailable" {
		t.Errorf("error field = %q, want the generic message", resp.Error)
	}
	if strings.Contains(rr.Body.String(), "10.0.0.7") {
		t.Errorf("response %q leaks backend detail", rr.Body)
	}
}

func TestMissingOwnerHeader(t *testing.T) {
	srv, _ := newTestServer(t, "x", intent.Unknown)

	req := httptest.NewRequest("GET", "/v1/transactions", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestListTransactions(t *testing.T) {
	srv, store := newTestServer(t, "x", intent.Unknown)
	ctx := context.Background()
	rec := &ledger.Record{Owner: "owner-1", Customer: "Ada", Amount: 100, Type: ledger.TypeIncome}
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	req := httptest.NewRequest("GET", "/v1/transactions", nil)
	req.Header.Set(OwnerHeader, "owner-2")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Transactions []*ledger.Record `json:"transactions"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Transactions) != 0 {
		t.Errorf("owner-2 sees %d foreign transactions", len(resp.Transactions))
	}
}

func TestDeleteTransaction(t *testing.T) {
	srv, store := newTestServer(t, "x", intent.Unknown)
	ctx := context.Background()
	rec := &ledger.Record{Owner: "owner-1", Customer: "Ada", Amount: 100, Type: ledger.TypeIncome}
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/v1/transactions/"+rec.ID, nil)
	req.Header.Set(OwnerHeader, "owner-2")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", rr.Code)
	}

	req = httptest.NewRequest("DELETE", "/v1/transactions/"+rec.ID, nil)
	req.Header.Set(OwnerHeader, "owner-1")
	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("owner delete status = %d, want 204", rr.Code)
	}
}

func TestDeleteTransactionsByDay(t *testing.T) {
	srv, store := newTestServer(t, "x", intent.Unknown)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for range 2 {
		rec := &ledger.Record{Owner: "owner-1", Customer: "Ada", Amount: 100, Type: ledger.TypeIncome, CreatedAt: day}
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	req := httptest.NewRequest("DELETE", "/v1/transactions?date=2026-03-10", nil)
	req.Header.Set(OwnerHeader, "owner-1")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var resp map[string]int
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["deleted"] != 2 {
		t.Errorf("deleted = %d, want 2", resp["deleted"])
	}

	req = httptest.NewRequest("DELETE", "/v1/transactions?date=March-10", nil)
	req.Header.Set(OwnerHeader, "owner-1")
	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rr.Code)
	}
}
