// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RaynerdTech/ToDo/internal/platform/middleware"
	requestutil "github.com/RaynerdTech/ToDo/internal/platform/request"
	"github.com/RaynerdTech/ToDo/internal/platform/respond"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

// Handler implements the HTTP layer for identity self-service.
type Handler struct {
	accountService *Service
	cookieSecure   bool
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, cookieSecure bool) *Handler {
	return &Handler{accountService: service, cookieSecure: cookieSecure}
}

// Mount registers the account routes on router.
//
// # Endpoints
//   - GET    /users/{id}        : Public identity lookup.
//   - DELETE /delete            : Deletes the caller (behind gate).
//   - PUT    /update            : Partial profile update (behind gate).
//   - PUT    /password          : Password change (behind gate).
//   - PUT    /change-role/{id}  : Role change (behind gate, Admin+).
func (handler *Handler) Mount(router chi.Router, gate func(http.Handler) http.Handler) {
	router.Get("/users/{id}", handler.getUser)

	router.Group(func(protected chi.Router) {
		protected.Use(gate)

		protected.Delete("/delete", handler.deleteSelf)
		protected.Put("/update", handler.updateProfile)
		protected.Put("/password", handler.updatePassword)
		protected.With(middleware.RequireRole(sec.RoleAdmin, MsgRoleForbidden)).
			Put("/change-role/{id}", handler.updateRole)
	})
}

// # Request Payloads

type deleteRequest struct {
	Password string `json:"password"`
}

// updateProfileRequest is decoded strictly: any key outside this struct is rejected.
type updateProfileRequest struct {
	UserName *string `json:"userName"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updateRoleRequest struct {
	NewRole string `json:"newRole"`
}

// # Endpoints

/*
GET /users/{id}.

Description: Retrieves a single identity without its password hash.

Response:
  - 200: User
  - 404: ErrNotFound
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.GetUser(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /delete.

Description: Deletes the caller after password confirmation, revokes the
session and clears the cookie. The body may be empty for federated identities.

Response:
  - 200: {message, user}
  - 401: Invalid password
  - 404: ErrNotFound
*/
func (handler *Handler) deleteSelf(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input deleteRequest
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	removed, err := handler.accountService.DeleteSelf(request.Context(), claims, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	auth.ClearSessionCookie(writer, handler.cookieSecure)
	respond.OK(writer, map[string]any{
		auth.FieldMessage: MsgDeleted,
		auth.FieldUser:    removed,
	})
}

/*
PUT /update.

Description: Partially updates userName, email, age or gender.

Response:
  - 200: {message, user}
  - 400: Unknown field, invalid gender, empty update or taken handle/email
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeStrictJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		UserName: input.UserName,
		Email:    input.Email,
		Age:      input.Age,
		Gender:   input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		auth.FieldMessage: MsgUpdated,
		auth.FieldUser:    updated,
	})
}

/*
PUT /password.

Response:
  - 200: {message}
  - 400: Old password mismatch or unchanged password
  - 404: ErrNotFound
*/
func (handler *Handler) updatePassword(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updatePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.accountService.UpdatePassword(request.Context(), userID, UpdatePasswordInput{
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MsgPasswordUpdated)
}

/*
PUT /change-role/{id}.

Response:
  - 200: {message, user}
  - 400: Invalid role provided
  - 403: Caller is not Admin or SuperAdmin
  - 404: Target not found
*/
func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.accountService.UpdateRole(request.Context(), claims, requestutil.Param(request, "id"), input.NewRole)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		auth.FieldMessage: MsgRoleUpdated,
		auth.FieldUser:    updated,
	})
}
