package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinetrack/models"
	"cinetrack/services/identity"
)

type identityService interface {
	Current() *models.Identity
	SignUp(email, secret string) (*models.Identity, error)
	SignIn(email, secret string) (*models.Identity, error)
	SignOut()
}

var _ identityService = (*identity.Service)(nil)

type AuthHandler struct {
	Identity identityService
}

func NewAuthHandler(svc identityService) *AuthHandler {
	return &AuthHandler{Identity: svc}
}

type credentialsRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// SignUp registers a new account and signs it in.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	id, err := h.Identity.SignUp(creds.Email, creds.Secret)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, id)
}

// SignIn exchanges credentials for the matching identity.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	id, err := h.Identity.SignIn(creds.Email, creds.Secret)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, id)
}

// SignOut clears the current identity.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Identity.SignOut()
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current identity, or null when logged out.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"identity": h.Identity.Current()})
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var creds credentialsRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return credentialsRequest{}, false
	}
	return creds, true
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, identity.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
