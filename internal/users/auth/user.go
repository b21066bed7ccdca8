// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

/*
Package auth implements the identity and session layer.

It defines the Identity entity (User), the stores that persist it and the
service that registers identities, verifies credentials and mints session
tokens.

# Identity kinds

A password identity carries a bcrypt hash, an age and a gender. A federated
("credential account") identity is created by a trusted third party and
carries none of the three; it never goes through password verification.
*/
package auth

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

// # Enumerations

// Gender is the self-declared gender of an identity.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every accepted [Gender].
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// IsValid reports whether g is one of [Genders].
func (g Gender) IsValid() bool {
	for _, gender := range Genders {
		if g == gender {
			return true
		}
	}
	return false
}

// GenderNames returns the string form of [Genders] for validation messages.
func GenderNames() []string {
	names := make([]string, len(Genders))
	for i, gender := range Genders {
		names[i] = string(gender)
	}
	return names
}

// # Domain Entities

// User represents a registered identity.
type User struct {
	ID                string    `json:"id"`
	UserName          string    `json:"userName"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"` // Never serialised.
	CredentialAccount bool      `json:"credentialAccount"`
	Gender            Gender    `json:"gender,omitempty"`
	Age               *int      `json:"age,omitempty"`
	Role              sec.Role  `json:"role"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsFederated reports whether the identity was created through the
// federated path and therefore has no password.
func (user *User) IsFederated() bool {
	return user.CredentialAccount
}

// # Normalisation

// NormalizeUserName trims the handle and converts it to Unicode NFC so that
// visually identical handles collide on the unique index.
func NormalizeUserName(userName string) string {
	return norm.NFC.String(strings.TrimSpace(userName))
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Field Identifiers

// JSON field names shared by validation and response payloads.
const (
	FieldUserName    = "userName"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAge         = "age"
	FieldGender      = "gender"
	FieldRole        = "role"
	FieldNewRole     = "newRole"
	FieldOldPassword = "oldPassword"
	FieldNewPassword = "newPassword"
	FieldUser        = "user"
	FieldMessage     = "message"
)
