package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"finmon/internal/core"
)

// transactionJSON is the wire shape of a transaction. The "type" field name
// is kept for compatibility with the dashboard frontend.
type transactionJSON struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Finance Monitor Backend is running!"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := s.lister.ListAll(ctx); err != nil {
		slog.ErrorContext(ctx, "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleListTransactions returns all stored transactions, newest first.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txs, err := s.lister.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read transactions")
		return
	}

	// Empty array, never null, when the store has no rows.
	out := make([]transactionJSON, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionJSON{
			ID:          t.ID,
			Description: t.Description,
			Type:        string(t.Kind),
			Amount:      t.Amount.Float(),
			Date:        t.Date.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// addTransactionRequest carries the raw POST payload. Amount arrives as
// json.Number so both numeric and quoted amounts parse without float drift.
type addTransactionRequest struct {
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req addTransactionRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input: No JSON data received")
		return
	}

	if req.Description == "" || req.Type == "" || req.Amount == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: description, type, amount, date")
		return
	}

	kind, err := core.ParseKind(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, `Invalid type. Must be "income" or "expense"`)
		return
	}

	amount, err := core.ParseAmount(req.Amount.String())
	if err != nil {
		if strings.HasPrefix(strings.TrimSpace(req.Amount.String()), "-") {
			writeError(w, http.StatusBadRequest, "Amount must be positive")
			return
		}
		writeError(w, http.StatusBadRequest, "Amount must be a number")
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date. Must be YYYY-MM-DD")
		return
	}

	tx := core.Transaction{
		Description: strings.TrimSpace(req.Description),
		Kind:        kind,
		Amount:      amount,
		Date:        date,
	}

	id, err := s.transactions.Record(r.Context(), tx)
	if err != nil {
		if core.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Transaction insert error", "error", err,
			"description", tx.Description, "amount_cents", tx.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Transaction added successfully",
		"id":      id,
	})
}

// handlePerformanceAnalysis serves the aggregate totals with the brief
// performance summary.
func (s *Server) handlePerformanceAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.analysis.PerformanceSummary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Performance analysis error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_income":        summary.Totals.Income.Float(),
		"total_expense":       summary.Totals.Expense.Float(),
		"net_profit":          summary.Totals.NetProfit.Float(),
		"performance_summary": summary.Narrative.Text,
	})
}

// handleDetailedAnalysis serves the detailed report with suggestions.
func (s *Server) handleDetailedAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	report, err := s.analysis.DetailedReport(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Detailed analysis error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"detailed_report": report.Text,
	})
}
