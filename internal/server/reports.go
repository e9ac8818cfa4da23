package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func tallyRequestFromQuery(r *http.Request) (reports.TallyRequest, error) {
	var req reports.TallyRequest
	var err error
	if req.Month, err = queryInt(r, "month"); err != nil {
		return req, err
	}
	if req.Year, err = queryInt(r, "year"); err != nil {
		return req, err
	}
	if req.TagID, err = queryInt64(r, "tag_id"); err != nil {
		return req, err
	}
	req.TagName = r.URL.Query().Get("tag")
	return req, nil
}

func (s *Server) handleTally(w http.ResponseWriter, r *http.Request) {
	req, err := tallyRequestFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	t, err := s.reports.Tally(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleReceiptsByTag(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	list, err := s.reports.ReceiptsByTag(r.Context(), viewerFrom(r.Context()), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleMonthlyBreakdown(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		writeError(w, err)
		return
	}
	if year == nil {
		writeError(w, common.InvalidArgumentError("year is required"))
		return
	}
	b, err := s.reports.MonthlyBreakdown(r.Context(), viewerFrom(r.Context()), *year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.reports.Summary(r.Context(), viewerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	month, err := queryInt(r, "month")
	if err != nil {
		writeError(w, err)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := s.reports.Charts(r.Context(), viewerFrom(r.Context()), month, year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) serveExport(w http.ResponseWriter, exp *reports.Export) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exp.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(exp.Content); err != nil {
		s.logger.Error("failed to write export body", "error", err)
	}
}

func (s *Server) handleExportReceipts(w http.ResponseWriter, r *http.Request) {
	req, err := tallyRequestFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	exp, err := s.reports.ExportReceipts(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	s.serveExport(w, exp)
}

func (s *Server) handleExportTally(w http.ResponseWriter, r *http.Request) {
	req, err := tallyRequestFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	exp, err := s.reports.ExportTally(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	s.serveExport(w, exp)
}
