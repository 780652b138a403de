package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campusevents/internal/store"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// listEventsHandler godoc
//
//	@Summary		List events
//	@Description	Lists events filtered by status, category, search term, date and location
//	@Tags			events
//	@Produce		json
//	@Param			status		query		string	false	"Event status (default approved)"
//	@Param			category	query		string	false	"Category; 'all' disables the filter"
//	@Param			search		query		string	false	"Matches title or description"
//	@Param			date		query		string	false	"Event date (YYYY-MM-DD)"
//	@Param			location	query		string	false	"Location substring"
//	@Param			limit		query		int		false	"Max results"
//	@Success		200			{array}		store.Event
//	@Failure		500			{object}	error
//	@Router			/events [get]
func (app *application) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filter := store.EventFilter{
		Status:   qs.Get("status"),
		Category: qs.Get("category"),
		Search:   qs.Get("search"),
		Location: qs.Get("location"),
	}

	// Default to approved events
	if filter.Status == "" {
		filter.Status = store.EventStatusApproved
	}
	if filter.Category == "all" {
		filter.Category = ""
	}

	if dateStr := qs.Get("date"); dateStr != "" {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("Invalid date format, expected YYYY-MM-DD"))
			return
		}
		filter.Date = &date
	}

	if limitStr := qs.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			app.badRequestResponse(w, r, errors.New("Invalid limit"))
			return
		}
		filter.Limit = limit
	}

	events, err := app.store.Events.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, events); err != nil {
		app.internalServerError(w, r, err)
	}
}

type createEventPayload struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
}

// createEventHandler godoc
//
//	@Summary		Create an event
//	@Description	Creates an event in pending status, awaiting moderation
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createEventPayload	true	"Event fields"
//	@Success		200		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events [post]
func (app *application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var payload createEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New("Missing required fields"))
		return
	}

	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid date format, expected YYYY-MM-DD"))
		return
	}

	user := getUserFromContext(r)

	code, err := app.eventCodes.Generate(user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	event := &store.Event{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        date,
		Time:        payload.Time,
		Location:    payload.Location,
		Category:    payload.Category,
		Code:        code,
		OrganizerID: user.ID,
	}

	if err := app.store.Events.Create(r.Context(), event); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventHandler godoc
//
//	@Summary		Get an event
//	@Description	Returns the event with its organizer and attendee list
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	store.Event
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/events/{eventID} [get]
func (app *application) getEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
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

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventByCodeHandler godoc
//
//	@Summary		Resolve an event share code
//	@Tags			events
//	@Produce		json
//	@Param			code	path		string	true	"Share code"
//	@Success		200		{object}	store.Event
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/events/code/{code} [get]
func (app *application) getEventByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	event, err := app.store.Events.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

type updateEventPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// updateEventHandler godoc
//
//	@Summary		Update an event
//	@Description	Organizer or admin only. A content edit of an approved event by a non-admin resets it to pending for re-review.
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		updateEventPayload	true	"Fields to change"
//	@Success		200		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID} [patch]
func (app *application) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
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

	user := getUserFromContext(r)
	isAdmin := user.IsAdmin()
	isOrganizer := event.OrganizerID == user.ID

	if !isAdmin && !isOrganizer {
		app.forbiddenResponse(w, r, errors.New("Not authorized to update this event"))
		return
	}

	var payload updateEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := map[string]any{}
	contentEdit := false

	if payload.Title != nil {
		updates["title"] = *payload.Title
		contentEdit = true
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
		contentEdit = true
	}
	if payload.Date != nil {
		date, err := time.Parse(dateLayout, *payload.Date)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("Invalid date format, expected YYYY-MM-DD"))
			return
		}
		updates["date"] = date
		contentEdit = true
	}
	if payload.Time != nil {
		updates["time"] = *payload.Time
		contentEdit = true
	}
	if payload.Location != nil {
		updates["location"] = *payload.Location
		contentEdit = true
	}
	if payload.Category != nil {
		updates["category"] = *payload.Category
		contentEdit = true
	}

	if payload.Status != nil {
		if !store.ValidEventStatus(*payload.Status) {
			app.badRequestResponse(w, r, errors.New("Invalid status"))
			return
		}
		// Once approved, only an admin may change the status directly.
		if !isAdmin {
			if event.Status == store.EventStatusApproved && *payload.Status != store.EventStatusApproved {
				app.forbiddenResponse(w, r, errors.New("Cannot change status of an approved event"))
				return
			}
			app.forbiddenResponse(w, r, errors.New("Not authorized to change event status"))
			return
		}
		updates["status"] = *payload.Status
	}

	// Editing an approved event resubmits it for review; admins are exempt.
	if contentEdit && !isAdmin && event.Status == store.EventStatusApproved {
		updates["status"] = store.EventStatusPending
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("No fields to update"))
		return
	}

	updated, err := app.store.Events.Update(r.Context(), eventID, updates)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteEventHandler godoc
//
//	@Summary		Delete an event
//	@Description	Organizer or admin only
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID} [delete]
func (app *application) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseIDParam(r, "eventID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid event ID"))
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

	user := getUserFromContext(r)
	if event.OrganizerID != user.ID && !user.IsAdmin() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to delete this event"))
		return
	}

	if err := app.store.Events.Delete(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Event not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
