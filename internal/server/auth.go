package server

import (
	"net/http"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/users"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, common.InvalidArgumentError("invalid request body"))
		return
	}
	user, err := s.users.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, common.InvalidArgumentError("invalid request body"))
		return
	}
	token, _, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewerFrom(r.Context()))
}
