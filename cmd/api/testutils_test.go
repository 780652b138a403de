package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"campusevents/internal/auth"
	"campusevents/internal/codes"
	"campusevents/internal/ratelimiter"
	"campusevents/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeData is the shared in-memory backing for the fake stores. The per-entity
// fakes below mirror the Postgres stores closely enough for handler tests:
// unique review per (event, user), like toggling, cascading deletes.
type fakeData struct {
	mu          sync.Mutex
	seq         int64
	users       map[int64]*store.User
	invitations map[string]int64
	refresh     map[int64]string
	events      map[int64]*store.Event
	attendees   map[int64]map[int64]bool
	reviews     map[int64]*store.Review
	likes       map[int64]map[int64]bool
	comments    map[int64]*store.Comment
}

func newFakeData() *fakeData {
	return &fakeData{
		users:       map[int64]*store.User{},
		invitations: map[string]int64{},
		refresh:     map[int64]string{},
		events:      map[int64]*store.Event{},
		attendees:   map[int64]map[int64]bool{},
		reviews:     map[int64]*store.Review{},
		likes:       map[int64]map[int64]bool{},
		comments:    map[int64]*store.Comment{},
	}
}

func (d *fakeData) nextID() int64 {
	d.seq++
	return d.seq
}

func (d *fakeData) eventUser(userID int64) *store.EventUser {
	if u, ok := d.users[userID]; ok {
		return &store.EventUser{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return &store.EventUser{ID: userID}
}

type fakeUsersStore struct{ d *fakeData }

func (s *fakeUsersStore) Create(ctx context.Context, tx pgx.Tx, user *store.User) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	user.ID = s.d.nextID()
	user.CreatedAt = time.Now()
	s.d.users[user.ID] = user
	return nil
}

func (s *fakeUsersStore) CreateAndInvite(ctx context.Context, user *store.User, token string, exp time.Duration) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, u := range s.d.users {
		if strings.EqualFold(u.Email, user.Email) {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = s.d.nextID()
	user.Role = store.RoleUser
	user.CreatedAt = time.Now()
	s.d.users[user.ID] = user
	s.d.invitations[token] = user.ID
	return nil
}

func (s *fakeUsersStore) Activate(ctx context.Context, token string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	userID, ok := s.d.invitations[token]
	if !ok {
		return store.ErrNotFound
	}
	s.d.users[userID].IsActive = true
	delete(s.d.invitations, token)
	return nil
}

func (s *fakeUsersStore) GetByID(ctx context.Context, userID int64) (*store.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	user, ok := s.d.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (s *fakeUsersStore) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, u := range s.d.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUsersStore) UpdateProfile(ctx context.Context, userID int64, name, email, bio string) (*store.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	user, ok := s.d.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	for id, u := range s.d.users {
		if id != userID && strings.EqualFold(u.Email, email) {
			return nil, store.ErrDuplicateEmail
		}
	}
	user.Name = name
	user.Email = email
	user.Bio = bio
	user.UpdatedAt = time.Now()
	return user, nil
}

func (s *fakeUsersStore) List(ctx context.Context) ([]store.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	users := []store.User{}
	for _, u := range s.d.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *fakeUsersStore) UpdateRole(ctx context.Context, userID int64, role string) (*store.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	user, ok := s.d.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	return user, nil
}

func (s *fakeUsersStore) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.refresh[userID] = refreshToken
	return nil
}

func (s *fakeUsersStore) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	token, ok := s.d.refresh[userID]
	if !ok {
		return "", store.ErrNotFound
	}
	return token, nil
}

func (s *fakeUsersStore) DeleteRefreshToken(ctx context.Context, userID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	delete(s.d.refresh, userID)
	return nil
}

func (s *fakeUsersStore) Delete(ctx context.Context, userID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	delete(s.d.users, userID)
	return nil
}

type fakeEventsStore struct{ d *fakeData }

func (s *fakeEventsStore) Create(ctx context.Context, event *store.Event) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	event.ID = s.d.nextID()
	if event.Status == "" {
		event.Status = store.EventStatusPending
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	s.d.events[event.ID] = event
	return nil
}

func (s *fakeEventsStore) GetByID(ctx context.Context, eventID int64) (*store.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	event, ok := s.d.events[eventID]
	if !ok {
		return nil, store.ErrNotFound
	}
	event.Organizer = s.d.eventUser(event.OrganizerID)
	return event, nil
}

func (s *fakeEventsStore) GetByCode(ctx context.Context, code string) (*store.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, e := range s.d.events {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeEventsStore) List(ctx context.Context, filter store.EventFilter) ([]store.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	events := []store.Event{}
	for _, e := range s.d.events {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(e.Description), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Date != nil && !e.Date.Equal(*filter.Date) {
			continue
		}
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	if filter.Limit > 0 && len(events) > filter.Limit {
		events = events[:filter.Limit]
	}
	return events, nil
}

func (s *fakeEventsStore) Update(ctx context.Context, eventID int64, updates map[string]any) (*store.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	event, ok := s.d.events[eventID]
	if !ok {
		return nil, store.ErrNotFound
	}
	for field, value := range updates {
		switch field {
		case "title":
			event.Title = value.(string)
		case "description":
			event.Description = value.(string)
		case "date":
			event.Date = value.(time.Time)
		case "time":
			event.Time = value.(string)
		case "location":
			event.Location = value.(string)
		case "category":
			event.Category = value.(string)
		case "status":
			event.Status = value.(string)
		}
	}
	event.UpdatedAt = time.Now()
	return event, nil
}

func (s *fakeEventsStore) SetStatus(ctx context.Context, eventID int64, status string, reviewerID int64, rejectionReason *string) (*store.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	event, ok := s.d.events[eventID]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now()
	event.Status = status
	event.ApprovedBy = &reviewerID
	event.ApprovedAt = &now
	event.RejectionReason = rejectionReason
	event.UpdatedAt = now
	return event, nil
}

func (s *fakeEventsStore) Delete(ctx context.Context, eventID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.events[eventID]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.events, eventID)
	delete(s.d.attendees, eventID)
	for id, review := range s.d.reviews {
		if review.EventID == eventID {
			delete(s.d.reviews, id)
			delete(s.d.likes, id)
			for cid, c := range s.d.comments {
				if c.ReviewID == id {
					delete(s.d.comments, cid)
				}
			}
		}
	}
	return nil
}

func (s *fakeEventsStore) Register(ctx context.Context, eventID, userID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.attendees[eventID] == nil {
		s.d.attendees[eventID] = map[int64]bool{}
	}
	s.d.attendees[eventID][userID] = true
	return nil
}

func (s *fakeEventsStore) Unregister(ctx context.Context, eventID, userID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	delete(s.d.attendees[eventID], userID)
	return nil
}

func (s *fakeEventsStore) GetAttendees(ctx context.Context, eventID int64) ([]store.EventUser, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	attendees := []store.EventUser{}
	for userID := range s.d.attendees[eventID] {
		attendees = append(attendees, *s.d.eventUser(userID))
	}
	sort.Slice(attendees, func(i, j int) bool { return attendees[i].Name < attendees[j].Name })
	return attendees, nil
}

type fakeReviewsStore struct{ d *fakeData }

func (s *fakeReviewsStore) Create(ctx context.Context, review *store.Review) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, r := range s.d.reviews {
		if r.EventID == review.EventID && r.UserID == review.UserID {
			return store.ErrAlreadyReviewed
		}
	}
	review.ID = s.d.nextID()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	s.d.reviews[review.ID] = review
	return nil
}

func (s *fakeReviewsStore) hydrate(review *store.Review, viewerID int64) *store.Review {
	out := *review
	out.User = s.d.eventUser(review.UserID)
	out.LikesCount = int64(len(s.d.likes[review.ID]))
	out.UserHasLiked = s.d.likes[review.ID][viewerID]
	out.CommentsCount = 0
	for _, c := range s.d.comments {
		if c.ReviewID == review.ID {
			out.CommentsCount++
		}
	}
	return &out
}

func (s *fakeReviewsStore) GetByID(ctx context.Context, reviewID, viewerID int64) (*store.Review, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	review, ok := s.d.reviews[reviewID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.hydrate(review, viewerID), nil
}

func (s *fakeReviewsStore) GetByEvent(ctx context.Context, eventID, viewerID int64) ([]store.Review, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	reviews := []store.Review{}
	for _, r := range s.d.reviews {
		if r.EventID == eventID {
			reviews = append(reviews, *s.hydrate(r, viewerID))
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (s *fakeReviewsStore) Update(ctx context.Context, reviewID int64, rating *int, content *string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	review, ok := s.d.reviews[reviewID]
	if !ok {
		return store.ErrNotFound
	}
	if rating != nil {
		review.Rating = *rating
	}
	if content != nil {
		review.Content = *content
	}
	review.UpdatedAt = time.Now()
	return nil
}

func (s *fakeReviewsStore) Delete(ctx context.Context, reviewID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.reviews[reviewID]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.reviews, reviewID)
	delete(s.d.likes, reviewID)
	for cid, c := range s.d.comments {
		if c.ReviewID == reviewID {
			delete(s.d.comments, cid)
		}
	}
	return nil
}

func (s *fakeReviewsStore) ToggleLike(ctx context.Context, reviewID, userID int64) (bool, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.likes[reviewID] == nil {
		s.d.likes[reviewID] = map[int64]bool{}
	}
	liked := true
	if s.d.likes[reviewID][userID] {
		delete(s.d.likes[reviewID], userID)
		liked = false
	} else {
		s.d.likes[reviewID][userID] = true
	}
	return liked, int64(len(s.d.likes[reviewID])), nil
}

type fakeCommentsStore struct{ d *fakeData }

func (s *fakeCommentsStore) Create(ctx context.Context, comment *store.Comment) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	comment.ID = s.d.nextID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	s.d.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentsStore) GetByID(ctx context.Context, commentID int64) (*store.Comment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	comment, ok := s.d.comments[commentID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *comment
	out.User = s.d.eventUser(comment.UserID)
	return &out, nil
}

func (s *fakeCommentsStore) GetByReview(ctx context.Context, reviewID int64) ([]store.Comment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	comments := []store.Comment{}
	for _, c := range s.d.comments {
		if c.ReviewID == reviewID {
			out := *c
			out.User = s.d.eventUser(c.UserID)
			comments = append(comments, out)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}

func (s *fakeCommentsStore) Update(ctx context.Context, commentID int64, content string) (*store.Comment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	comment, ok := s.d.comments[commentID]
	if !ok {
		return nil, store.ErrNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (s *fakeCommentsStore) Delete(ctx context.Context, commentID int64) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.comments[commentID]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.comments, commentID)
	return nil
}

type fakeMailer struct{}

func (fakeMailer) Send(templateFile, username, email string, data any) (int, error) {
	return http.StatusOK, nil
}

func newTestApplication(t *testing.T) (*application, *fakeData) {
	t.Helper()

	data := newFakeData()

	eventCodes, err := codes.NewGenerator("test-salt")
	require.NoError(t, err)

	app := &application{
		config: config{
			env: "test",
			rateLimiter: ratelimiter.Config{
				Enabled: false,
			},
		},
		store: store.Storage{
			Users:    &fakeUsersStore{data},
			Events:   &fakeEventsStore{data},
			Reviews:  &fakeReviewsStore{data},
			Comments: &fakeCommentsStore{data},
		},
		logger:        zap.NewNop().Sugar(),
		mailer:        fakeMailer{},
		authenticator: auth.NewJWTAuthenticator("secret", "refresh-secret", "test", "test", time.Hour, time.Hour),
		eventCodes:    eventCodes,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(1000, time.Second),
	}

	return app, data
}

// seedUser inserts a user directly into the fake store and returns it with a
// valid bearer token for the role.
func seedUser(t *testing.T, app *application, data *fakeData, role string) (*store.User, string) {
	t.Helper()

	data.mu.Lock()
	id := data.nextID()
	user := &store.User{
		ID:       id,
		Name:     fmt.Sprintf("user-%d", id),
		Email:    fmt.Sprintf("user-%d@example.edu", id),
		Role:     role,
		IsActive: true,
	}
	data.users[id] = user
	data.mu.Unlock()

	token, _, err := app.authenticator.GenerateTokens(user.ID, user.Role)
	require.NoError(t, err)

	return user, token
}

func seedEvent(data *fakeData, organizerID int64, status string) *store.Event {
	data.mu.Lock()
	defer data.mu.Unlock()
	id := data.nextID()
	event := &store.Event{
		ID:          id,
		Title:       fmt.Sprintf("Event %d", id),
		Description: "A campus event",
		Date:        time.Now().Add(48 * time.Hour),
		Time:        "18:00",
		Location:    "Main Hall",
		Category:    "academic",
		Status:      status,
		Code:        fmt.Sprintf("code%d", id),
		OrganizerID: organizerID,
	}
	data.events[id] = event
	return event
}

func seedReview(data *fakeData, eventID, userID int64, rating int) *store.Review {
	data.mu.Lock()
	defer data.mu.Unlock()
	id := data.nextID()
	review := &store.Review{
		ID:        id,
		EventID:   eventID,
		UserID:    userID,
		Rating:    rating,
		Content:   "Great event",
		CreatedAt: time.Now(),
	}
	data.reviews[id] = review
	return review
}

func seedComment(data *fakeData, reviewID, userID int64) *store.Comment {
	data.mu.Lock()
	defer data.mu.Unlock()
	id := data.nextID()
	comment := &store.Comment{
		ID:        id,
		ReviewID:  reviewID,
		UserID:    userID,
		Content:   "Agreed",
		CreatedAt: time.Now(),
	}
	data.comments[id] = comment
	return comment
}

func httptestRequest(t *testing.T, method, target string, body io.Reader, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
