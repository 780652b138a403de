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

func TestUpdateProfileValidation(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	_, token := seedUser(t, app, data, store.RoleUser)

	t.Run("name required", func(t *testing.T) {
		rr := executeRequest(httptestRequest(t, http.MethodPost, "/v1/users/profile", jsonBody(t, map[string]string{
			"email": "someone@example.edu",
		}), token), mux)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Name is required", decodeError(t, rr.Body))
	})

	t.Run("email required", func(t *testing.T) {
		rr := executeRequest(httptestRequest(t, http.MethodPost, "/v1/users/profile", jsonBody(t, map[string]string{
			"name": "Someone",
		}), token), mux)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Email is required", decodeError(t, rr.Body))
	})
}

func TestUpdateProfileNeverChangesRole(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	user, token := seedUser(t, app, data, store.RoleUser)

	// A role field in the body is simply ignored
	rr := executeRequest(httptestRequest(t, http.MethodPost, "/v1/users/profile", jsonBody(t, map[string]string{
		"name":  "New Name",
		"email": user.Email,
		"bio":   "Hello",
		"role":  "admin",
	}), token), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated store.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Hello", updated.Bio)
	assert.Equal(t, store.RoleUser, updated.Role)
}

func TestGetProfile(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	user, token := seedUser(t, app, data, store.RoleUser)

	rr := executeRequest(httptestRequest(t, http.MethodGet, "/v1/users/profile", nil, token), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var profile store.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Email, profile.Email)
}

func TestListUsersAdminOnly(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	_, userToken := seedUser(t, app, data, store.RoleUser)
	_, approverToken := seedUser(t, app, data, store.RoleApprover)
	_, adminToken := seedUser(t, app, data, store.RoleAdmin)

	for _, token := range []string{userToken, approverToken} {
		rr := executeRequest(httptestRequest(t, http.MethodGet, "/v1/admin/users", nil, token), mux)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Not authorized to access user data", decodeError(t, rr.Body))
	}

	rr := executeRequest(httptestRequest(t, http.MethodGet, "/v1/admin/users", nil, adminToken), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var users []store.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 3)
}

func TestUpdateUserRole(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	target, _ := seedUser(t, app, data, store.RoleUser)
	_, adminToken := seedUser(t, app, data, store.RoleAdmin)

	t.Run("invalid role", func(t *testing.T) {
		rr := executeRequest(httptestRequest(t, http.MethodPatch, fmt.Sprintf("/v1/admin/users/%d", target.ID), jsonBody(t, map[string]string{
			"role": "superuser",
		}), adminToken), mux)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid role", decodeError(t, rr.Body))
	})

	t.Run("promote to approver", func(t *testing.T) {
		rr := executeRequest(httptestRequest(t, http.MethodPatch, fmt.Sprintf("/v1/admin/users/%d", target.ID), jsonBody(t, map[string]string{
			"role": "approver",
		}), adminToken), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var updated store.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, store.RoleApprover, updated.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		rr := executeRequest(httptestRequest(t, http.MethodPatch, "/v1/admin/users/9999", jsonBody(t, map[string]string{
			"role": "admin",
		}), adminToken), mux)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User not found", decodeError(t, rr.Body))
	})
}

func TestAuthTokenRoleComesFromStore(t *testing.T) {
	app, data := newTestApplication(t)
	mux := app.mount()

	// Token minted while the user was an admin keeps working after a demotion,
	// but the demoted role is what the handlers see.
	user, token := seedUser(t, app, data, store.RoleAdmin)

	data.mu.Lock()
	data.users[user.ID].Role = store.RoleUser
	data.mu.Unlock()

	rr := executeRequest(httptestRequest(t, http.MethodGet, "/v1/admin/users", nil, token), mux)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
