// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

// # Identity Constraints

const (
	// MaxUserNameLength bounds the handle in characters.
	MaxUserNameLength = 64

	// MaxAge is the upper bound accepted for the age field.
	MaxAge = 150
)

// # Client Messages

const (
	MsgRegistered        = "User registered successfully"
	MsgUserExists        = "User already exists"
	MsgLoggedIn          = "Successfully logged in"
	MsgLoggedInFederated = "Successfully logged in via credential account"
	MsgFederatedLogin    = "Login successful"
	MsgFederatedCreated  = "User created and login successful"
	MsgPasswordAccount   = "User already exists as a password account"
	MsgLoggedOut         = "Successfully logged out. See you soon!"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordMismatch  = "Password does not match"
	MsgElevatedRole      = "Only the User role can be chosen at registration"
)
