package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, pgx.Tx, *User) error
		CreateAndInvite(ctx context.Context, user *User, token string, invitationExp time.Duration) error
		Activate(ctx context.Context, token string) error
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
		UpdateProfile(ctx context.Context, userID int64, name, email, bio string) (*User, error)
		List(context.Context) ([]User, error)
		UpdateRole(ctx context.Context, userID int64, role string) (*User, error)
		SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
		GetRefreshToken(ctx context.Context, userID int64) (string, error)
		DeleteRefreshToken(ctx context.Context, userID int64) error
		Delete(ctx context.Context, userID int64) error
	}
	Events interface {
		Create(context.Context, *Event) error
		GetByID(context.Context, int64) (*Event, error)
		GetByCode(context.Context, string) (*Event, error)
		List(context.Context, EventFilter) ([]Event, error)
		Update(ctx context.Context, eventID int64, updates map[string]any) (*Event, error)
		SetStatus(ctx context.Context, eventID int64, status string, reviewerID int64, rejectionReason *string) (*Event, error)
		Delete(ctx context.Context, eventID int64) error
		Register(ctx context.Context, eventID, userID int64) error
		Unregister(ctx context.Context, eventID, userID int64) error
		GetAttendees(ctx context.Context, eventID int64) ([]EventUser, error)
	}
	Reviews interface {
		Create(context.Context, *Review) error
		GetByID(ctx context.Context, reviewID, viewerID int64) (*Review, error)
		GetByEvent(ctx context.Context, eventID, viewerID int64) ([]Review, error)
		Update(ctx context.Context, reviewID int64, rating *int, content *string) error
		Delete(ctx context.Context, reviewID int64) error
		ToggleLike(ctx context.Context, reviewID, userID int64) (liked bool, likesCount int64, err error)
	}
	Comments interface {
		Create(context.Context, *Comment) error
		GetByID(ctx context.Context, commentID int64) (*Comment, error)
		GetByReview(ctx context.Context, reviewID int64) ([]Comment, error)
		Update(ctx context.Context, commentID int64, content string) (*Comment, error)
		Delete(ctx context.Context, commentID int64) error
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:    &UsersStore{db},
		Events:   &EventsStore{db},
		Reviews:  &ReviewsStore{db},
		Comments: &CommentsStore{db},
	}
}

func withTx(db *pgxpool.Pool, ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. Conflict-prone writes rely on this instead of read-then-write
// checks so concurrent requests cannot create duplicate rows.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
