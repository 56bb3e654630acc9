package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// token exchanges a form-encoded username/password pair for a bearer token.
//
// The credentials arrive as an application/x-www-form-urlencoded body with
// "username" and "password" fields. A recognized pair yields HTTP 200 with
//
//	{"access_token": "<jwt>", "token_type": "bearer"}
//
// and any rejected pair — unknown username, wrong password, or missing
// fields — yields HTTP 401 with the same generic detail, so the response
// never reveals whether the username exists.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body was passed")
		writeDetail(w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	issued, err := h.services.AuthService.IssueToken(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			log.Debug().Str("username", username).Msg("credentials rejected")
			writeDetail(w, detailIncorrectCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token issuance")
			writeDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: issued.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
