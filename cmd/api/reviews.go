package main

import (
	"errors"
	"net/http"
	"strings"

	"campusevents/internal/store"
)

// viewerID returns the caller's user ID, or zero for anonymous requests. Used
// by endpoints behind optional auth to personalize userHasLiked.
func viewerID(r *http.Request) int64 {
	if user := getUserFromContext(r); user != nil {
		return user.ID
	}
	return 0
}

// getEventReviewsHandler godoc
//
//	@Summary		List an event's reviews
//	@Description	Newest first, each with author, like and comment counts, and whether the caller has liked it
//	@Tags			reviews
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{array}		store.Review
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/events/{eventID}/reviews [get]
func (app *application) getEventReviewsHandler(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := app.store.Reviews.GetByEvent(r.Context(), eventID, viewerID(r))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateReviewPayload struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// createReviewHandler godoc
//
//	@Summary		Review an event
//	@Description	One review per user per event, enforced by the database constraint
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		CreateReviewPayload	true	"Rating and content"
//	@Success		200		{object}	store.Review
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.Rating == 0 || strings.TrimSpace(payload.Content) == "" {
		app.badRequestResponse(w, r, errors.New("Rating and content are required"))
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		app.badRequestResponse(w, r, errors.New("Rating must be between 1 and 5"))
		return
	}

	user := getUserFromContext(r)

	review := &store.Review{
		EventID: eventID,
		UserID:  user.ID,
		Rating:  payload.Rating,
		Content: payload.Content,
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyReviewed):
			app.badRequestResponse(w, r, errors.New("You have already reviewed this event"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	created, err := app.store.Reviews.GetByID(r.Context(), review.ID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReviewHandler godoc
//
//	@Summary		Get a review
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	store.Review
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews/{reviewID} [get]
func (app *application) getReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid review ID"))
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID, viewerID(r))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateReviewPayload struct {
	Rating  *int    `json:"rating"`
	Content *string `json:"content"`
}

// updateReviewHandler godoc
//
//	@Summary		Update a review
//	@Description	Author only
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		UpdateReviewPayload	true	"Fields to change"
//	@Success		200			{object}	store.Review
//	@Failure		400			{object}	error
//	@Failure		401			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID} [patch]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid review ID"))
		return
	}

	user := getUserFromContext(r)

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if review.UserID != user.ID {
		app.forbiddenResponse(w, r, errors.New("Not authorized to update this review"))
		return
	}

	var payload UpdateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.Rating != nil && (*payload.Rating < 1 || *payload.Rating > 5) {
		app.badRequestResponse(w, r, errors.New("Rating must be between 1 and 5"))
		return
	}
	if payload.Content != nil && strings.TrimSpace(*payload.Content) == "" {
		app.badRequestResponse(w, r, errors.New("Rating and content are required"))
		return
	}

	if err := app.store.Reviews.Update(r.Context(), reviewID, payload.Rating, payload.Content); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	updated, err := app.store.Reviews.GetByID(r.Context(), reviewID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReviewHandler godoc
//
//	@Summary		Delete a review
//	@Description	Author or admin only. Comments and likes cascade.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]string
//	@Failure		401			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid review ID"))
		return
	}

	user := getUserFromContext(r)

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if review.UserID != user.ID && !user.IsAdmin() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to delete this review"))
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "Review deleted successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
