package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"campusevents/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRejectsEmptyContent(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	organizer, _ := seedUser(t, app, data, store.RoleUser)
	author, _ := seedUser(t, app, data, store.RoleUser)
	_, token := seedUser(t, app, data, store.RoleUser)
	event := seedEvent(data, organizer.ID, store.EventStatusApproved)
	review := seedReview(data, event.ID, author.ID, 4)

	req := httptestRequest(t, http.MethodPost, fmt.Sprintf("/v1/reviews/%d/comments", review.ID), jsonBody(t, map[string]string{
		"content": "   ",
	}), token)

	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Comment content cannot be empty", decodeError(t, rr.Body))
}

func TestCreateAndListComments(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	organizer, _ := seedUser(t, app, data, store.RoleUser)
	author, _ := seedUser(t, app, data, store.RoleUser)
	commenter, token := seedUser(t, app, data, store.RoleUser)
	event := seedEvent(data, organizer.ID, store.EventStatusApproved)
	review := seedReview(data, event.ID, author.ID, 4)

	rr := executeRequest(httptestRequest(t, http.MethodPost, fmt.Sprintf("/v1/reviews/%d/comments", review.ID), jsonBody(t, map[string]string{
		"content": "Totally agree",
	}), token), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var comment store.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.Equal(t, commenter.ID, comment.UserID)
	require.NotNil(t, comment.User)
	assert.Equal(t, commenter.Name, comment.User.Name)

	rr = executeRequest(httptestRequest(t, http.MethodGet, fmt.Sprintf("/v1/reviews/%d/comments", review.ID), nil, ""), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var comments []store.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "Totally agree", comments[0].Content)
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	organizer, _ := seedUser(t, app, data, store.RoleUser)
	author, authorToken := seedUser(t, app, data, store.RoleUser)
	_, adminToken := seedUser(t, app, data, store.RoleAdmin)
	event := seedEvent(data, organizer.ID, store.EventStatusApproved)
	review := seedReview(data, event.ID, author.ID, 4)
	comment := seedComment(data, review.ID, author.ID)

	// Admins may delete comments but not rewrite them
	rr := executeRequest(httptestRequest(t, http.MethodPatch, fmt.Sprintf("/v1/comments/%d", comment.ID), jsonBody(t, map[string]string{
		"content": "Edited by admin",
	}), adminToken), mux)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Not authorized to update this comment", decodeError(t, rr.Body))

	rr = executeRequest(httptestRequest(t, http.MethodPatch, fmt.Sprintf("/v1/comments/%d", comment.ID), jsonBody(t, map[string]string{
		"content": "Edited by author",
	}), authorToken), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated store.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Edited by author", updated.Content)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	organizer, _ := seedUser(t, app, data, store.RoleUser)
	author, _ := seedUser(t, app, data, store.RoleUser)
	_, strangerToken := seedUser(t, app, data, store.RoleUser)
	_, adminToken := seedUser(t, app, data, store.RoleAdmin)
	event := seedEvent(data, organizer.ID, store.EventStatusApproved)
	review := seedReview(data, event.ID, author.ID, 4)
	comment := seedComment(data, review.ID, author.ID)

	rr := executeRequest(httptestRequest(t, http.MethodDelete, fmt.Sprintf("/v1/comments/%d", comment.ID), nil, strangerToken), mux)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Not authorized to delete this comment", decodeError(t, rr.Body))

	rr = executeRequest(httptestRequest(t, http.MethodDelete, fmt.Sprintf("/v1/comments/%d", comment.ID), nil, adminToken), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Comment deleted successfully", resp["message"])
}
