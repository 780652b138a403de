package main

import (
	"errors"
	"net/http"

	"campusevents/internal/store"
)

type LikeResponse struct {
	Action     string `json:"action"`
	Message    string `json:"message"`
	LikesCount int64  `json:"likesCount"`
}

// toggleReviewLikeHandler godoc
//
//	@Summary		Like or unlike a review
//	@Description	Toggles the caller's like. Liking an already-liked review removes the like.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	LikeResponse
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/like [post]
func (app *application) toggleReviewLikeHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid review ID"))
		return
	}

	user := getUserFromContext(r)

	if _, err := app.store.Reviews.GetByID(r.Context(), reviewID, user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	liked, likesCount, err := app.store.Reviews.ToggleLike(r.Context(), reviewID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := LikeResponse{
		Action:     "unliked",
		Message:    "Like removed successfully",
		LikesCount: likesCount,
	}
	if liked {
		resp.Action = "liked"
		resp.Message = "Review liked successfully"
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
