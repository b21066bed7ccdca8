// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/RaynerdTech/ToDo/internal/platform/request"
	"github.com/RaynerdTech/ToDo/internal/platform/respond"
	"github.com/RaynerdTech/ToDo/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService  *Service
	cookieSecure bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, cookieSecure bool) *Handler {
	return &Handler{authService: service, cookieSecure: cookieSecure}
}

// Mount registers the authentication routes on router.
//
// # Endpoints
//   - POST /register : Creates a password identity.
//   - POST /login    : Authenticates and sets the session cookie.
//   - POST /auth     : Federated login-or-create.
//   - POST /logout   : Revokes the session (behind gate).
func (handler *Handler) Mount(router chi.Router, gate func(http.Handler) http.Handler) {

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/auth", handler.federatedAuth)

	// Protected endpoints
	router.With(gate).Post("/logout", handler.logout)
}

// # Request Payloads

type registerRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type federatedRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
}

/*
Register handles the creation of a new password identity.

POST /register

Request:
  - Body: registerRequest (userName, email, password, age, gender, role?)

Response:
  - 201: {message, user}: Created identity without password
  - 400: Validation failure or "User already exists"
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		UserName: input.UserName,
		Email:    input.Email,
		Password: input.Password,
		Age:      input.Age,
		Gender:   input.Gender,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldMessage: MsgRegistered,
		FieldUser:    user,
	})
}

/*
Login authenticates an identity and establishes a session.

POST /login

Request:
  - Body: loginRequest (email, password)

Response:
  - 200: {message, user} + session cookie
  - 400: Missing password
  - 401: Password does not match
  - 404: Unknown email
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	SetSessionCookie(writer, session, handler.cookieSecure)

	message := MsgLoggedIn
	if session.User.IsFederated() {
		message = MsgLoggedInFederated
	}

	respond.OK(writer, map[string]any{
		FieldMessage: message,
		FieldUser:    session.User,
	})
}

/*
FederatedAuth logs in or creates a federated identity.

POST /auth

Request:
  - Body: federatedRequest (userName, email, gender)

Response:
  - 200: {message, user} + session cookie (existing federated identity)
  - 201: {message, user} + session cookie (identity created)
  - 400: Missing fields or email owned by a password identity
*/
func (handler *Handler) federatedAuth(writer http.ResponseWriter, request *http.Request) {
	var input federatedRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, created, err := handler.authService.FederatedAuth(request.Context(), FederatedInput{
		UserName: input.UserName,
		Email:    input.Email,
		Gender:   input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	SetSessionCookie(writer, session, handler.cookieSecure)

	if created {
		respond.Created(writer, map[string]any{
			FieldMessage: MsgFederatedCreated,
			FieldUser:    session.User,
		})
		return
	}

	respond.OK(writer, map[string]any{
		FieldMessage: MsgFederatedLogin,
		FieldUser:    session.User,
	})
}

/*
Logout terminates the current session.

POST /logout

Response:
  - 200: {message}, cookie cleared, token revoked
  - 500: Revocation store failure
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ClearSessionCookie(writer, handler.cookieSecure)
	respond.Message(writer, MsgLoggedOut)
}
