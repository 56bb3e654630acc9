// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the domain types shared between the server, the
// storage layer, and the API client: the User record, the JWT-backed Token,
// and the HTTP response payloads.
package models

// User is the single record type managed by the registry. A user is
// identified externally by a nationally-issued ID number and internally by a
// store-assigned primary key.
//
// Field constraints (enforced by internal/validators before any write):
//   - Name: non-empty after trimming; letters, whitespace, and hyphens only.
//   - Address: at least 5 characters after trimming.
//   - Phone: optional leading plus sign followed by 7 to 15 digits.
//   - NationalID: passes the weighted-digit checksum and is globally unique.
//
// Records are immutable after creation: the core exposes no update or delete
// operations.
type User struct {
	// ID is the store-assigned primary key. Zero until the record is persisted.
	ID int64 `json:"id"`

	// Name is the person's full name, stored trimmed.
	Name string `json:"name"`

	// Address is the postal address, stored trimmed.
	Address string `json:"address"`

	// Phone is the contact phone number in `+?digits` form.
	Phone string `json:"phone"`

	// NationalID is the checksum-validated national identifier.
	// No two stored records ever share the same value.
	NationalID string `json:"national_id"`
}
