package main

import (
	"errors"
	"net/http"

	"campusevents/internal/store"
)

type RegistrationResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Attendees []store.EventUser `json:"attendees"`
}

// registerForEventHandler godoc
//
//	@Summary		Register for an event
//	@Description	Registers the caller as an attendee. Only approved events accept registrations; registering twice is a no-op.
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	RegistrationResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/register [post]
func (app *application) registerForEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found or not approved"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if event.Status != store.EventStatusApproved {
		app.notFoundResponse(w, r, errors.New("Event not found or not approved"))
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Events.Register(r.Context(), eventID, user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	attendees, err := app.store.Events.GetAttendees(r.Context(), eventID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := RegistrationResponse{
		Success:   true,
		Message:   "Successfully registered for event",
		Attendees: attendees,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// unregisterFromEventHandler godoc
//
//	@Summary		Unregister from an event
//	@Description	Removes the caller from the attendee list. Succeeds whether or not they were registered.
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	RegistrationResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/register [delete]
func (app *application) unregisterFromEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
		return
	}

	if _, err := app.store.Events.GetByID(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Events.Unregister(r.Context(), eventID, user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	attendees, err := app.store.Events.GetAttendees(r.Context(), eventID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := RegistrationResponse{
		Success:   true,
		Message:   "Successfully unregistered from event",
		Attendees: attendees,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
