package main

import (
	"errors"
	"net/http"

	"campusevents/internal/store"
)

// listUsersHandler godoc
//
//	@Summary		List all users
//	@Description	Admin only
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		store.User
//	@Failure		401	{object}	error
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if !user.IsAdmin() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to access user data"))
		return
	}

	users, err := app.store.Users.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateUserRolePayload struct {
	Role string `json:"role"`
}

// updateUserRoleHandler godoc
//
//	@Summary		Change a user's role
//	@Description	Admin only. Accepts user, approver or admin.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Param			payload	body		UpdateUserRolePayload	true	"New role"
//	@Success		200		{object}	store.User
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID} [patch]
func (app *application) updateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	caller := getUserFromContext(r)
	if !caller.IsAdmin() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to access user data"))
		return
	}

	userID, err := parseIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid user ID"))
		return
	}

	var payload UpdateUserRolePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !store.ValidRole(payload.Role) {
		app.badRequestResponse(w, r, errors.New("Invalid role"))
		return
	}

	updated, err := app.store.Users.UpdateRole(r.Context(), userID, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("User not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}
