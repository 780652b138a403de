package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Event moderation states. Every event starts pending; only approvers and
// admins move it forward, and a content edit by the organizer moves an
// approved event back to pending for re-review.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

// ValidEventStatus reports whether status is one of the closed status set.
func ValidEventStatus(status string) bool {
	switch status {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}

type Event struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            time.Time  `json:"date"`
	Time            string     `json:"time"`
	Location        string     `json:"location"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	Code            string     `json:"code"`
	OrganizerID     int64      `json:"organizer_id"`
	ApprovedBy      *int64     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined fields
	Organizer *EventUser  `json:"organizer,omitempty"`
	Attendees []EventUser `json:"attendees,omitempty"`
}

// EventUser is the embedded shape of a user on event responses.
type EventUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// EventFilter narrows event listings. Zero values mean "no filter", except
// Status which callers default to approved.
type EventFilter struct {
	Status   string
	Category string
	Search   string
	Date     *time.Time
	Location string
	Limit    int
}

type EventsStore struct {
	db *pgxpool.Pool
}

func (s *EventsStore) Create(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO events (title, description, date, time, location, category, code, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Location,
		event.Category,
		event.Code,
		event.OrganizerID,
	).Scan(&event.ID, &event.Status, &event.CreatedAt, &event.UpdatedAt)
}

const eventColumns = `
	e.id, e.title, e.description, e.date, e.time, e.location, e.category,
	e.status, e.code, e.organizer_id, e.approved_by, e.approved_at,
	e.rejection_reason, e.created_at, e.updated_at, u.id, u.name, u.email
`

func scanEvent(row pgx.Row) (*Event, error) {
	event := &Event{Organizer: &EventUser{}}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Status,
		&event.Code,
		&event.OrganizerID,
		&event.ApprovedBy,
		&event.ApprovedAt,
		&event.RejectionReason,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.Organizer.ID,
		&event.Organizer.Name,
		&event.Organizer.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventsStore) GetByID(ctx context.Context, eventID int64) (*Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	event, err := scanEvent(s.db.QueryRow(ctx, query, eventID))
	if err != nil {
		return nil, err
	}

	attendees, err := s.GetAttendees(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	event.Attendees = attendees

	return event, nil
}

func (s *EventsStore) GetByCode(ctx context.Context, code string) (*Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.code = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	event, err := scanEvent(s.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, err
	}

	attendees, err := s.GetAttendees(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	event.Attendees = attendees

	return event, nil
}

func (s *EventsStore) List(ctx context.Context, filter EventFilter) ([]Event, error) {
	conditions := []string{"e.status = $1"}
	args := []any{filter.Status}
	argCounter := 2

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("e.category = $%d", argCounter))
		args = append(args, filter.Category)
		argCounter++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.title ILIKE $%d OR e.description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("e.date = $%d", argCounter))
		args = append(args, *filter.Date)
		argCounter++
	}
	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("e.location ILIKE $%d", argCounter))
		args = append(args, "%"+filter.Location+"%")
		argCounter++
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY e.date ASC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCounter)
		args = append(args, filter.Limit)
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// updatable event columns; everything else goes through dedicated methods
func isValidEventField(field string) bool {
	validFields := map[string]bool{
		"title":       true,
		"description": true,
		"date":        true,
		"time":        true,
		"location":    true,
		"category":    true,
		"status":      true,
	}
	return validFields[field]
}

// Update applies a partial update built from the provided column/value pairs
// and returns the updated event.
func (s *EventsStore) Update(ctx context.Context, eventID int64, updates map[string]any) (*Event, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	setClauses := []string{}
	args := []any{}
	argCounter := 1

	for field, value := range updates {
		if !isValidEventField(field) {
			return nil, fmt.Errorf("invalid field name: %s", field)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, argCounter))
		args = append(args, value)
		argCounter++
	}
	args = append(args, eventID)

	query := fmt.Sprintf(`
		UPDATE events SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING id, title, description, date, time, location, category,
			status, code, organizer_id, approved_by, approved_at,
			rejection_reason, created_at, updated_at
	`, strings.Join(setClauses, ", "), argCounter)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	event := &Event{}
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Status,
		&event.Code,
		&event.OrganizerID,
		&event.ApprovedBy,
		&event.ApprovedAt,
		&event.RejectionReason,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// SetStatus records a moderation decision. For approvals the rejection reason
// is cleared; for rejections reviewerID and the reason are stored together.
func (s *EventsStore) SetStatus(ctx context.Context, eventID int64, status string, reviewerID int64, rejectionReason *string) (*Event, error) {
	query := `
		UPDATE events
		SET status = $1, approved_by = $2, approved_at = NOW(),
			rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, title, description, date, time, location, category,
			status, code, organizer_id, approved_by, approved_at,
			rejection_reason, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	event := &Event{}
	err := s.db.QueryRow(ctx, query, status, reviewerID, rejectionReason, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Status,
		&event.Code,
		&event.OrganizerID,
		&event.ApprovedBy,
		&event.ApprovedAt,
		&event.RejectionReason,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventsStore) Delete(ctx context.Context, eventID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Register adds the user to the attendee set. The insert is idempotent:
// registering twice is a no-op, also under concurrent requests.
func (s *EventsStore) Register(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO event_attendees (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, query, eventID, userID)
	return err
}

// Unregister removes the user from the attendee set; removing an absent
// attendee is a no-op.
func (s *EventsStore) Unregister(ctx context.Context, eventID, userID int64) error {
	query := `DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, query, eventID, userID)
	return err
}

func (s *EventsStore) GetAttendees(ctx context.Context, eventID int64) ([]EventUser, error) {
	query := `
		SELECT u.id, u.name
		FROM event_attendees ea
		JOIN users u ON u.id = ea.user_id
		WHERE ea.event_id = $1
		ORDER BY u.name ASC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []EventUser{}
	for rows.Next() {
		var attendee EventUser
		if err := rows.Scan(&attendee.ID, &attendee.Name); err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}
	return attendees, rows.Err()
}
