package main

import (
	"errors"
	"net/http"
	"strings"

	"campusevents/internal/store"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *store.User {
	user, _ := r.Context().Value(userCtx).(*store.User)
	return user
}

// getProfileHandler godoc
//
//	@Summary		Get the caller's profile
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	store.User
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/profile [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateProfilePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	// Accepted in the body but never applied; role changes go through the
	// admin endpoint only.
	Role string `json:"role"`
}

// updateProfileHandler godoc
//
//	@Summary		Update the caller's profile
//	@Description	Updates name, email and bio. The role is never writable here.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateProfilePayload	true	"Profile fields"
//	@Success		200		{object}	store.User
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/profile [post]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var payload UpdateProfilePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		app.badRequestResponse(w, r, errors.New("Name is required"))
		return
	}
	if strings.TrimSpace(payload.Email) == "" {
		app.badRequestResponse(w, r, errors.New("Email is required"))
		return
	}

	user := getUserFromContext(r)

	updated, err := app.store.Users.UpdateProfile(r.Context(), user.ID, payload.Name, payload.Email, payload.Bio)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("User not found"))
		case errors.Is(err, store.ErrDuplicateEmail):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}
