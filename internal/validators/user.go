// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-registry/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping). They double as the keys of
// [ValidationError.Fields].
const (
	// FieldName targets the person's full name.
	FieldName = "name"

	// FieldAddress targets the postal address.
	FieldAddress = "address"

	// FieldPhone targets the contact phone number.
	FieldPhone = "phone"

	// FieldNationalID targets the checksum-validated national identifier.
	FieldNationalID = "national_id"
)

// userFieldOrder is the canonical order in which user fields are checked and
// reported. Every field is always checked; failures accumulate instead of
// short-circuiting.
var userFieldOrder = []string{FieldName, FieldAddress, FieldPhone, FieldNationalID}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z\s\-]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// UserValidator implements the Validator interface for [models.User]
// candidates submitted to the create operation.
//
// Validation is an explicit pipeline of (field, check) pairs executed
// unconditionally: every requested field is checked and all failures are
// collected into a single [ValidationError], mapping each field name to its
// ordered list of messages. A missing required field is reported with a
// "required" message distinct from the field's format message.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator. The returned struct
// satisfies the Validator interface.
func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms of [models.User] are accepted; any other type yields
// ErrUnsupportedType.
//
// Optional fields restrict validation to the named subset; when omitted, all
// four user fields are validated. On failure the returned error is a
// *[ValidationError] carrying every accumulated message.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Normalize returns a copy of user with leading and trailing whitespace
// removed from the name and address fields. Phone and national ID are passed
// through untouched.
func (v *UserValidator) Normalize(user models.User) models.User {
	user.Name = strings.TrimSpace(user.Name)
	user.Address = strings.TrimSpace(user.Address)
	return user
}

// userCheck validates one field of the candidate and appends any failure
// messages to vErr.
type userCheck func(user models.User, vErr *ValidationError)

// userChecks maps each field name to its check. All checks are independent:
// none inspects another field and none stops the pipeline.
var userChecks = map[string]userCheck{
	FieldName:       checkName,
	FieldAddress:    checkAddress,
	FieldPhone:      checkPhone,
	FieldNationalID: checkNationalID,
}

// validateUser runs the field pipeline over the candidate.
//
// Default validated fields (when none specified):
// Name, Address, Phone, NationalID.
//
// Returns ErrUnknownField for an unrecognized field name, a *ValidationError
// if any check failed, or nil.
func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = userFieldOrder
	}

	vErr := &ValidationError{}
	for _, f := range fields {
		check, ok := userChecks[f]
		if !ok {
			return ErrUnknownField
		}
		check(user, vErr)
	}

	if vErr.empty() {
		return nil
	}
	return vErr
}

func checkName(user models.User, vErr *ValidationError) {
	name := strings.TrimSpace(user.Name)
	if name == "" {
		vErr.add(FieldName, "Name is required")
		return
	}
	if !namePattern.MatchString(name) {
		vErr.add(FieldName, "Name must contain only letters, spaces, or hyphens")
	}
}

func checkAddress(user models.User, vErr *ValidationError) {
	address := strings.TrimSpace(user.Address)
	if address == "" {
		vErr.add(FieldAddress, "Address is required")
		return
	}
	// minimum length is in characters, not bytes
	if utf8.RuneCountInString(address) < 5 {
		vErr.add(FieldAddress, "Address is too short")
	}
}

func checkPhone(user models.User, vErr *ValidationError) {
	if user.Phone == "" {
		vErr.add(FieldPhone, "Phone is required")
		return
	}
	if !phonePattern.MatchString(user.Phone) {
		vErr.add(FieldPhone, "Invalid phone number format")
	}
}

func checkNationalID(user models.User, vErr *ValidationError) {
	if user.NationalID == "" {
		vErr.add(FieldNationalID, "National ID is required")
		return
	}
	if !IsValidNationalID(user.NationalID) {
		vErr.add(FieldNationalID, "Invalid national ID")
	}
}
