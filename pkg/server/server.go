// Package server exposes the voice-bookkeeping pipeline over a small JSON
// HTTP API. Authentication happens in front of this server; the verified
// trader identity arrives in the X-Owner-ID header.
package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ojaledger/ojaledger/pkg/intent"
	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
	"github.com/ojaledger/ojaledger/pkg/pipeline"
)

// OwnerHeader carries the verified trader identity.
const OwnerHeader = "X-Owner-ID"

// maxUploadBytes bounds one audio upload (about 5 minutes of canonical WAV).
const maxUploadBytes = 10 << 20

// Server handles the HTTP API. Construct with New.
type Server struct {
	orch   *pipeline.Orchestrator
	logger *slog.Logger
	mux    *http.ServeMux
}

// New builds the server around an orchestrator.
func New(orch *pipeline.Orchestrator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{orch: orch, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /v1/commands", s.handleCommand)
	s.mux.HandleFunc("GET /v1/transactions", s.handleList)
	s.mux.HandleFunc("DELETE /v1/transactions", s.handleDeleteDay)
	s.mux.HandleFunc("DELETE /v1/transactions/{id}", s.handleDelete)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type commandResponse struct {
	Transcript string           `json:"transcript,omitempty"`
	Intent     intent.Intent    `json:"intent,omitempty"`
	Text       string           `json:"text"`
	Audio      string           `json:"audio,omitempty"`
	Records    []*ledger.Record `json:"records,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.owner(w, r)
	if !ok {
		return
	}
	language, _ := lang.Parse(r.URL.Query().Get("language"))

	audio, err := readAudio(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	reply, err := s.orch.SubmitVoiceCommand(r.Context(), &pipeline.Command{
		Owner:    owner,
		Language: language,
		Audio:    audio,
	})
	if err != nil {
		s.logger.Warn("voice command failed", "owner", owner, "error", err)
		status, msg := http.StatusBadGateway, "backend unavailable"
		if errors.Is(err, pipeline.ErrInput) {
			status, msg = http.StatusBadRequest, "unusable input"
		}
		resp := errorResponse{Error: msg}
		if reply != nil {
			resp.Text = reply.Text
			resp.Audio = base64.StdEncoding.EncodeToString(reply.Audio)
		}
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, commandResponse{
		Transcript: reply.Transcript,
		Intent:     reply.Intent,
		Text:       reply.Text,
		Audio:      base64.StdEncoding.EncodeToString(reply.Audio),
		Records:    reply.Records,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.owner(w, r)
	if !ok {
		return
	}
	records, err := s.orch.ListTransactions(r.Context(), owner)
	if err != nil {
		s.logger.Error("list transactions", "owner", owner, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	if records == nil {
		records = []*ledger.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": records})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.owner(w, r)
	if !ok {
		return
	}
	err := s.orch.DeleteTransaction(r.Context(), owner, r.PathValue("id"))
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "transaction not found"})
	case err != nil:
		s.logger.Error("delete transaction", "owner", owner, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.owner(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date)})
		return
	}
	n, err := s.orch.DeleteTransactionsOn(r.Context(), owner, day)
	if err != nil {
		s.logger.Error("delete transactions by day", "owner", owner, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

func (s *Server) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := r.Header.Get(OwnerHeader)
	if owner == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + OwnerHeader + " header"})
		return "", false
	}
	return owner, true
}

// readAudio accepts either a multipart form with an "audio" file field or a
// raw audio body.
func readAudio(r *http.Request) ([]byte, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		f, _, err := r.FormFile("audio")
		if err != nil {
			return nil, fmt.Errorf("missing audio file field: %w", err)
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxUploadBytes))
	}
	return io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
