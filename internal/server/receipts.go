package server

import (
	"net/http"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/receipts"
)

func (s *Server) handleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	var req receipts.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, common.InvalidArgumentError("invalid request body"))
		return
	}
	created, err := s.receipts.Create(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := receipts.ListRequest{
		Category:    q.Get("category"),
		PaymentMode: q.Get("payment_mode"),
	}
	if skip, err := queryInt(r, "skip"); err != nil {
		writeError(w, err)
		return
	} else if skip != nil {
		req.Skip = *skip
	}
	if limit, err := queryInt(r, "limit"); err != nil {
		writeError(w, err)
		return
	} else if limit != nil {
		req.Limit = *limit
	}
	uploadedBy, err := queryInt64(r, "uploaded_by")
	if err != nil {
		writeError(w, err)
		return
	}
	req.UploadedBy = uploadedBy

	list, err := s.receipts.List(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSearchReceipts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := receipts.SearchRequest{
		StoreName:   q.Get("store_name"),
		Category:    q.Get("category"),
		TagName:     q.Get("tag"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		PaymentMode: q.Get("payment_mode"),
	}
	var err error
	if req.MinAmount, err = queryFloat(r, "min_amount"); err != nil {
		writeError(w, err)
		return
	}
	if req.MaxAmount, err = queryFloat(r, "max_amount"); err != nil {
		writeError(w, err)
		return
	}

	list, err := s.receipts.Search(r.Context(), viewerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := s.receipts.Get(r.Context(), viewerFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.receipts.Delete(r.Context(), viewerFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
