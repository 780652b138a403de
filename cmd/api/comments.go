package main

import (
	"errors"
	"net/http"
	"strings"

	"campusevents/internal/store"
)

// getReviewCommentsHandler godoc
//
//	@Summary		List a review's comments
//	@Description	Oldest first, each with its author
//	@Tags			comments
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{array}		store.Comment
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews/{reviewID}/comments [get]
func (app *application) getReviewCommentsHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid review ID"))
		return
	}

	if _, err := app.store.Reviews.GetByID(r.Context(), reviewID, viewerID(r)); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Review not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	comments, err := app.store.Comments.GetByReview(r.Context(), reviewID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, comments); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CommentPayload struct {
	Content string `json:"content"`
}

// createCommentHandler godoc
//
//	@Summary		Comment on a review
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int				true	"Review ID"
//	@Param			payload		body		CommentPayload	true	"Comment content"
//	@Success		200			{object}	store.Comment
//	@Failure		400			{object}	error
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/comments [post]
func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload CommentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(payload.Content) == "" {
		app.badRequestResponse(w, r, errors.New("Comment content cannot be empty"))
		return
	}

	comment := &store.Comment{
		ReviewID: reviewID,
		UserID:   user.ID,
		Content:  payload.Content,
	}

	if err := app.store.Comments.Create(r.Context(), comment); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	created, err := app.store.Comments.GetByID(r.Context(), comment.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCommentHandler godoc
//
//	@Summary		Update a comment
//	@Description	Author only
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			commentID	path		int				true	"Comment ID"
//	@Param			payload		body		CommentPayload	true	"New content"
//	@Success		200			{object}	store.Comment
//	@Failure		400			{object}	error
//	@Failure		401			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/comments/{commentID} [patch]
func (app *application) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDParam(r, "commentID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid comment ID"))
		return
	}

	comment, err := app.store.Comments.GetByID(r.Context(), commentID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Comment not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if comment.UserID != user.ID {
		app.forbiddenResponse(w, r, errors.New("Not authorized to update this comment"))
		return
	}

	var payload CommentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(payload.Content) == "" {
		app.badRequestResponse(w, r, errors.New("Comment content cannot be empty"))
		return
	}

	updated, err := app.store.Comments.Update(r.Context(), commentID, payload.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Comment not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCommentHandler godoc
//
//	@Summary		Delete a comment
//	@Description	Author or admin only
//	@Tags			comments
//	@Produce		json
//	@Param			commentID	path		int	true	"Comment ID"
//	@Success		200			{object}	map[string]string
//	@Failure		401			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/comments/{commentID} [delete]
func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDParam(r, "commentID")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid comment ID"))
		return
	}

	comment, err := app.store.Comments.GetByID(r.Context(), commentID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Comment not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if comment.UserID != user.ID && !user.IsAdmin() {
		app.forbiddenResponse(w, r, errors.New("Not authorized to delete this comment"))
		return
	}

	if err := app.store.Comments.Delete(r.Context(), commentID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, errors.New("Comment not found"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
