package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var candidate models.User
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, candidate)
	if err != nil {
		var vErr *validators.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Debug().Err(err).Msg("candidate rejected by validation")
			writeValidationDetail(w, vErr.Fields, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrNationalIDExists):
			log.Debug().Str("national_id", candidate.NationalID).Msg("duplicate national_id rejected")
			writeDetail(w, detailNationalIDExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeDetail(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Int64("id", created.ID).Msg("user created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric user id was passed")
		writeDetail(w, detailUserNotFound, http.StatusNotFound)
		return
	}

	found, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Int64("id", id).Msg("user not found")
			writeDetail(w, detailUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			writeDetail(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ids, err := h.services.UserService.ListUserIDs(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		writeDetail(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}
