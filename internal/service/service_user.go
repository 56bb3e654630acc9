// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

// userService is the concrete implementation of UserService. It owns the
// validation pipeline state for a single request and delegates persistence
// to a UserRepository; the repository's unique constraint is the
// authoritative uniqueness guarantee.
type userService struct {
	userRepository store.UserRepository
	validator      *validators.UserValidator
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// CreateUser runs the candidate through the field validation engine and,
// if every field passes, persists it.
//
// The flow is:
//  1. Normalize (trim name and address).
//  2. Validate all four fields; failures accumulate and are returned as a
//     *validators.ValidationError without touching the store.
//  3. Pre-check the store for an existing record with the same national_id.
//     The pre-check is an optimization for a friendly error; the storage
//     unique constraint remains the backstop, so a concurrent create racing
//     past the pre-check still resolves to store.ErrNationalIDExists.
//  4. Insert and return the record with its store-assigned ID.
func (s *userService) CreateUser(ctx context.Context, candidate models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	normalized := s.validator.Normalize(candidate)

	if err := s.validator.Validate(ctx, normalized); err != nil {
		log.Debug().Err(err).Msg("candidate failed validation")
		return models.User{}, err
	}

	_, err := s.userRepository.FindUserByNationalID(ctx, normalized.NationalID)
	switch {
	case err == nil:
		log.Debug().Str("national_id", normalized.NationalID).Msg("duplicate national_id rejected by pre-check")
		return models.User{}, store.ErrNationalIDExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("uniqueness pre-check failed")
		return models.User{}, fmt.Errorf("uniqueness pre-check failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, normalized)
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetUser looks a record up by primary key. A miss surfaces as
// store.ErrUserNotFound, which the transport maps to an empty 404 result
// rather than a system error.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	found, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return found, nil
}

// ListUserIDs returns every stored identifier in primary-key order.
func (s *userService) ListUserIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.userRepository.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return ids, nil
}
