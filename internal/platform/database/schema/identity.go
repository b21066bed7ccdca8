// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

// Package schema holds table and column names shared by the SQL stores.
package schema

// IdentityTable represents the 'identities' table
type IdentityTable struct {
	Table             string
	ID                string
	UserName          string
	Email             string
	Password          string
	CredentialAccount string
	Gender            string
	Age               string
	Role              string
	CreatedAt         string
	UpdatedAt         string
}

// Identity is the schema definition for identities
var Identity = IdentityTable{
	Table:             "identities",
	ID:                "id",
	UserName:          "user_name",
	Email:             "email",
	Password:          "password_hash",
	CredentialAccount: "credential_account",
	Gender:            "gender",
	Age:               "age",
	Role:              "role",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

// Columns returns all standard column names
func (t IdentityTable) Columns() []string {
	return []string{
		t.ID, t.UserName, t.Email, t.Password, t.CredentialAccount,
		t.Gender, t.Age, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
