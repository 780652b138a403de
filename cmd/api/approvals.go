package main

import (
	"errors"
	"net/http"
	"strings"

	"campusevents/internal/mailer"
	"campusevents/internal/store"
)

// approveEventHandler godoc
//
//	@Summary		Approve an event
//	@Description	Approver or admin only. Approvers may only approve pending events; admins may approve from any status.
//	@Tags			moderation
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	store.Event
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/approve [post]
func (app *application) approveEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
		return
	}

	user := getUserFromContext(r)
	if !user.IsModerator() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to approve events"))
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if !user.IsAdmin() && event.Status != store.EventStatusPending {
		app.forbiddenResponse(w, r, errors.New("Only pending events can be approved"))
		return
	}

	approved, err := app.store.Events.SetStatus(r.Context(), eventID, store.EventStatusApproved, user.ID, nil)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.notifyOrganizer(r, approved, mailer.EventApprovedTemplate, "")

	if err := app.jsonResponse(w, http.StatusOK, approved); err != nil {
		app.internalServerError(w, r, err)
	}
}

type RejectEventPayload struct {
	Reason string `json:"reason"`
}

// rejectEventHandler godoc
//
//	@Summary		Reject an event
//	@Description	Approver or admin only. Records a rejection reason, defaulting when none is given.
//	@Tags			moderation
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		RejectEventPayload	false	"Rejection reason"
//	@Success		200		{object}	store.Event
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/reject [post]
func (app *application) rejectEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
		return
	}

	user := getUserFromContext(r)
	if !user.IsModerator() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to reject events"))
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if !user.IsAdmin() && event.Status == store.EventStatusApproved {
		app.forbiddenResponse(w, r, errors.New("Cannot change status of an approved event"))
		return
	}

	// The body is optional; an absent or blank reason gets the default.
	var payload RejectEventPayload
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	reason := strings.TrimSpace(payload.Reason)
	if reason == "" {
		reason = "No reason provided"
	}

	rejected, err := app.store.Events.SetStatus(r.Context(), eventID, store.EventStatusRejected, user.ID, &reason)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.notifyOrganizer(r, rejected, mailer.EventRejectedTemplate, reason)

	if err := app.jsonResponse(w, http.StatusOK, rejected); err != nil {
		app.internalServerError(w, r, err)
	}
}

// notifyOrganizer emails the organizer about a moderation outcome. Delivery is
// best effort: a mail failure is logged and never fails the request.
func (app *application) notifyOrganizer(r *http.Request, event *store.Event, template, reason string) {
	organizer, err := app.store.Users.GetByID(r.Context(), event.OrganizerID)
	if err != nil {
		app.logger.Errorw("error fetching organizer for notification", "event_id", event.ID, "error", err)
		return
	}

	vars := struct {
		Username   string
		EventTitle string
		EventCode  string
		Reason     string
	}{
		Username:   organizer.Name,
		EventTitle: event.Title,
		EventCode:  event.Code,
		Reason:     reason,
	}

	if _, err := app.mailer.Send(template, organizer.Name, organizer.Email, vars); err != nil {
		app.logger.Errorw("error sending moderation email", "event_id", event.ID, "error", err)
	}
}
