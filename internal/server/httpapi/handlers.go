package httpapi

import (
	"errors"
	"net/http"

	"github.com/nutritrip/identity/internal/common"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	log := s.reqLogger(r.Context())

	var req signupRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	params, fields := validateSignup(req)
	if fields != nil {
		writeFieldErrors(w, http.StatusBadRequest, "validation_error", "invalid signup fields", fields)
		return
	}

	identity, err := s.accounts.SignUp(r.Context(), params)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			writeError(w, http.StatusConflict, "duplicate_email", "email already registered")
			return
		}
		log.Error(r.Context(), "signup failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "store_error", "could not create account")
		return
	}

	log.Info(r.Context(), "account created", "id", identity.ID)
	writeJSON(w, http.StatusOK, identityResponse{
		ID:           identity.ID,
		Email:        identity.Email,
		DisplayName:  identity.DisplayName,
		SessionToken: identity.SessionToken,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	log := s.reqLogger(r.Context())

	var req loginRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	if fields := validateLogin(req); fields != nil {
		writeFieldErrors(w, http.StatusBadRequest, "validation_error", "invalid login fields", fields)
		return
	}

	identity, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		log.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "store_error", "could not process login")
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{
		ID:           identity.ID,
		Email:        identity.Email,
		DisplayName:  identity.DisplayName,
		SessionToken: identity.SessionToken,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
