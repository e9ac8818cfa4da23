// Package server is the HTTP boundary. Handlers decode and parse inputs,
// delegate to the services, and translate the error taxonomy to statuses;
// no business rule lives here.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oakinyemi/masjid-receipts/internal/receipts"
	"github.com/oakinyemi/masjid-receipts/internal/reports"
	"github.com/oakinyemi/masjid-receipts/internal/tags"
	"github.com/oakinyemi/masjid-receipts/internal/users"
)

type Server struct {
	users    *users.Service
	receipts *receipts.Service
	tags     *tags.Service
	reports  *reports.Service
	logger   *slog.Logger
}

func New(users *users.Service, receipts *receipts.Service, tags *tags.Service, reports *reports.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{users: users, receipts: receipts, tags: tags, reports: reports, logger: logger}
}

// Router builds the full route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireAuth)
	authed.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)

	authed.HandleFunc("/receipts", s.handleCreateReceipt).Methods(http.MethodPost)
	authed.HandleFunc("/receipts", s.handleListReceipts).Methods(http.MethodGet)
	authed.HandleFunc("/receipts/search", s.handleSearchReceipts).Methods(http.MethodGet)
	authed.HandleFunc("/receipts/{id:[0-9]+}", s.handleGetReceipt).Methods(http.MethodGet)
	authed.HandleFunc("/receipts/{id:[0-9]+}", s.handleDeleteReceipt).Methods(http.MethodDelete)

	authed.HandleFunc("/tags", s.handleCreateTag).Methods(http.MethodPost)
	authed.HandleFunc("/tags", s.handleListTags).Methods(http.MethodGet)
	authed.HandleFunc("/tags/{id:[0-9]+}", s.handleGetTag).Methods(http.MethodGet)
	authed.HandleFunc("/tags/{id:[0-9]+}", s.handleDeleteTag).Methods(http.MethodDelete)
	authed.HandleFunc("/receipts/{id:[0-9]+}/tags/{tagID:[0-9]+}", s.handleAssignTag).Methods(http.MethodPost)
	authed.HandleFunc("/receipts/{id:[0-9]+}/tags/{tagID:[0-9]+}", s.handleUnassignTag).Methods(http.MethodDelete)

	authed.HandleFunc("/reports/tally", s.handleTally).Methods(http.MethodGet)
	authed.HandleFunc("/reports/by-tag/{name}", s.handleReceiptsByTag).Methods(http.MethodGet)
	authed.HandleFunc("/reports/monthly-breakdown", s.handleMonthlyBreakdown).Methods(http.MethodGet)
	authed.HandleFunc("/reports/summary", s.handleSummary).Methods(http.MethodGet)
	authed.HandleFunc("/reports/dashboard/charts", s.handleCharts).Methods(http.MethodGet)
	authed.HandleFunc("/reports/export/receipts", s.handleExportReceipts).Methods(http.MethodGet)
	authed.HandleFunc("/reports/export/tally", s.handleExportTally).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
