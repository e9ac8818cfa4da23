package server

import (
	"net/http"

	"github.com/oakinyemi/masjid-receipts/internal/common"
)

type tagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, common.InvalidArgumentError("invalid request body"))
		return
	}
	tag, err := s.tags.Create(r.Context(), viewerFrom(r.Context()), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	list, err := s.tags.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tag, err := s.tags.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.tags.Delete(r.Context(), viewerFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAssignTag(w http.ResponseWriter, r *http.Request) {
	receiptID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.tags.Assign(r.Context(), viewerFrom(r.Context()), receiptID, tagID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "assigned"})
}

func (s *Server) handleUnassignTag(w http.ResponseWriter, r *http.Request) {
	receiptID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.tags.Unassign(r.Context(), viewerFrom(r.Context()), receiptID, tagID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
