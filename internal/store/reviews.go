package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAlreadyReviewed = errors.New("you have already reviewed this event")

type Review struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"` // 1-5
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	User          *EventUser `json:"user,omitempty"`
	LikesCount    int64      `json:"likes_count"`
	CommentsCount int64      `json:"comments_count"`
	UserHasLiked  bool       `json:"user_has_liked"`
}

type ReviewsStore struct {
	db *pgxpool.Pool
}

// Create inserts the review. Uniqueness per (event, user) is enforced by the
// DB constraint, not a prior existence check, so two concurrent creates
// cannot both succeed.
func (s *ReviewsStore) Create(ctx context.Context, review *Review) error {
	query := `
		INSERT INTO reviews (event_id, user_id, rating, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(ctx, query,
		review.EventID,
		review.UserID,
		review.Rating,
		review.Content,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyReviewed
		}
		return err
	}
	return nil
}

const reviewColumns = `
	r.id, r.event_id, r.user_id, r.rating, r.content, r.created_at, r.updated_at,
	u.id, u.name, u.email,
	(SELECT COUNT(*) FROM review_likes rl WHERE rl.review_id = r.id),
	(SELECT COUNT(*) FROM comments c WHERE c.review_id = r.id),
	EXISTS (SELECT 1 FROM review_likes rl WHERE rl.review_id = r.id AND rl.user_id = $2)
`

func scanReview(row pgx.Row) (*Review, error) {
	review := &Review{User: &EventUser{}}
	err := row.Scan(
		&review.ID,
		&review.EventID,
		&review.UserID,
		&review.Rating,
		&review.Content,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.User.ID,
		&review.User.Name,
		&review.User.Email,
		&review.LikesCount,
		&review.CommentsCount,
		&review.UserHasLiked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

// GetByID returns the review with author, aggregate counts, and whether
// viewerID has liked it. A viewerID of zero means an anonymous caller.
func (s *ReviewsStore) GetByID(ctx context.Context, reviewID, viewerID int64) (*Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return scanReview(s.db.QueryRow(ctx, query, reviewID, viewerID))
}

func (s *ReviewsStore) GetByEvent(ctx context.Context, eventID, viewerID int64) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, eventID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

// Update changes the provided fields only; nil means keep the current value.
func (s *ReviewsStore) Update(ctx context.Context, reviewID int64, rating *int, content *string) error {
	query := `
		UPDATE reviews
		SET rating = COALESCE($2, rating),
			content = COALESCE($3, content),
			updated_at = NOW()
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, reviewID, rating, content)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the review; comments and likes go with it via the cascading
// foreign keys.
func (s *ReviewsStore) Delete(ctx context.Context, reviewID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike likes the review for userID, or removes the like if one already
// exists. The insert goes first and a unique violation means "already liked",
// so concurrent toggles resolve against the constraint instead of a
// read-then-write check. Returns the resulting state and aggregate count.
func (s *ReviewsStore) ToggleLike(ctx context.Context, reviewID, userID int64) (bool, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	liked := true
	_, err := s.db.Exec(ctx,
		`INSERT INTO review_likes (review_id, user_id) VALUES ($1, $2)`,
		reviewID, userID,
	)
	if err != nil {
		if !isUniqueViolation(err) {
			return false, 0, err
		}
		if _, err := s.db.Exec(ctx,
			`DELETE FROM review_likes WHERE review_id = $1 AND user_id = $2`,
			reviewID, userID,
		); err != nil {
			return false, 0, err
		}
		liked = false
	}

	var count int64
	err = s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM review_likes WHERE review_id = $1`,
		reviewID,
	).Scan(&count)
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}
