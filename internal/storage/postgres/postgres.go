package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"saaf/internal/config"
	"saaf/internal/models"
	"saaf/internal/storage"

	"github.com/lib/pq"
)

const foreignKeyViolation pq.ErrorCode = "23503"

const schema = `
	CREATE TABLE IF NOT EXISTS posts (
		id         SERIAL PRIMARY KEY,
		title      VARCHAR(100) NOT NULL,
		content    TEXT NOT NULL,
		author_id  VARCHAR(150) NOT NULL,
		image      VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);

	CREATE TABLE IF NOT EXISTS comments (
		id         SERIAL PRIMARY KEY,
		post_id    INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id  VARCHAR(150) NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);

	CREATE TABLE IF NOT EXISTS events (
		id            SERIAL PRIMARY KEY,
		post_id       INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		title         VARCHAR(200) NOT NULL,
		description   TEXT NOT NULL,
		date          TIMESTAMPTZ NOT NULL,
		location_name VARCHAR(255) NOT NULL,
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT events_coordinates_pair CHECK ((latitude IS NULL) = (longitude IS NULL))
	);

	CREATE INDEX IF NOT EXISTS idx_events_post_id ON events(post_id);

	CREATE TABLE IF NOT EXISTS participations (
		id        SERIAL PRIMARY KEY,
		user_id   VARCHAR(150) NOT NULL,
		event_id  INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, event_id)
	);`

const eventColumns = `id, post_id, title, description, date, location_name, latitude, longitude, created_at`

type Storage struct {
	DB *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Storage) CreatePost(ctx context.Context, authorID, title, content string) (int, error) {
	query := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query, title, content, authorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	return id, nil
}

func (s *Storage) GetPost(ctx context.Context, id int) (*models.Post, error) {
	query := `
		SELECT id, title, content, author_id, image, created_at
		FROM posts
		WHERE id = $1`

	post, err := scanPost(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// GetPosts lists posts newest first. An empty authorID lists every author.
func (s *Storage) GetPosts(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `
		SELECT id, title, content, author_id, image, created_at
		FROM posts
		WHERE ($1 = '' OR author_id = $1)
		ORDER BY created_at DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (s *Storage) SetPostImage(ctx context.Context, postID int, userID, image string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkPostAuthor(ctx, tx, postID, userID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE posts SET image = $1 WHERE id = $2`, image, postID)
	if err != nil {
		return fmt.Errorf("failed to set post image: %w", err)
	}

	return tx.Commit()
}

// DeletePost removes the post together with its comments and events.
func (s *Storage) DeletePost(ctx context.Context, postID int, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkPostAuthor(ctx, tx, postID, userID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) CreateComment(ctx context.Context, postID int, authorID, content string) (int, error) {
	query := `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query, postID, authorID, content).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, storage.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	return id, nil
}

func (s *Storage) GetComments(ctx context.Context, postID int) ([]models.Comment, error) {
	query := `
		SELECT id, post_id, author_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err = rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// DeleteComment returns the id of the post the comment belonged to.
func (s *Storage) DeleteComment(ctx context.Context, commentID int, userID string) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var postID int
	var authorID string
	err = tx.QueryRowContext(ctx, `SELECT post_id, author_id FROM comments WHERE id = $1 FOR UPDATE`, commentID).
		Scan(&postID, &authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrCommentNotFound
		}
		return 0, fmt.Errorf("failed to get comment: %w", err)
	}

	if authorID != userID {
		return 0, storage.ErrForbidden
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID); err != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return postID, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (int, error) {
	query := `
		INSERT INTO events (post_id, title, description, date, location_name, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var lat, lng sql.NullFloat64
	if coords, ok := event.Coordinates(); ok {
		lat = sql.NullFloat64{Float64: coords.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: coords.Longitude, Valid: true}
	}

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		event.PostID,
		event.Title,
		event.Description,
		event.Date,
		event.LocationName,
		lat,
		lng,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, storage.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC, id ASC`

	return s.queryEvents(ctx, query)
}

func (s *Storage) GetEventsByPost(ctx context.Context, postID int) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE post_id = $1 ORDER BY date ASC, id ASC`

	return s.queryEvents(ctx, query, postID)
}

// ListEventsWithCoordinates returns every geocoded event in storage order.
func (s *Storage) ListEventsWithCoordinates(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY id ASC`

	return s.queryEvents(ctx, query)
}

// DeleteEvent is allowed only to the author of the parent post.
func (s *Storage) DeleteEvent(ctx context.Context, eventID int, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authorID string
	checkQuery := `
		SELECT p.author_id
		FROM events e
		JOIN posts p ON p.id = e.post_id
		WHERE e.id = $1
		FOR UPDATE OF e`

	err = tx.QueryRowContext(ctx, checkQuery, eventID).Scan(&authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event author: %w", err)
	}

	if authorID != userID {
		return storage.ErrForbidden
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return tx.Commit()
}

// JoinEvent records a participation. Joining twice is not an error and keeps the first record.
func (s *Storage) JoinEvent(ctx context.Context, eventID int, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkUpcoming(ctx, tx, eventID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO participations (user_id, event_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, event_id) DO NOTHING`

	if _, err = tx.ExecContext(ctx, insertQuery, userID, eventID); err != nil {
		return fmt.Errorf("failed to join event: %w", err)
	}

	return tx.Commit()
}

// CancelParticipation removes the participation if there is one.
func (s *Storage) CancelParticipation(ctx context.Context, eventID int, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkUpcoming(ctx, tx, eventID); err != nil {
		return err
	}

	deleteQuery := `
		DELETE FROM participations
		WHERE user_id = $1 AND event_id = $2`

	if _, err = tx.ExecContext(ctx, deleteQuery, userID, eventID); err != nil {
		return fmt.Errorf("failed to cancel participation: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) GetParticipants(ctx context.Context, eventID int) ([]models.Participation, error) {
	query := `
		SELECT id, event_id, user_id, joined_at
		FROM participations
		WHERE event_id = $1
		ORDER BY joined_at ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participation
	for rows.Next() {
		var p models.Participation
		if err = rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return participants, nil
}

func (s *Storage) GetJoinedEvents(ctx context.Context, userID string) ([]models.JoinedEvent, error) {
	query := `
		SELECT e.id, e.post_id, e.title, e.description, e.date, e.location_name,
		       e.latitude, e.longitude, e.created_at, p.joined_at
		FROM events e
		JOIN participations p ON p.event_id = e.id
		WHERE p.user_id = $1
		ORDER BY e.date ASC, e.id ASC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get joined events: %w", err)
	}
	defer rows.Close()

	var events []models.JoinedEvent
	for rows.Next() {
		var (
			je       models.JoinedEvent
			lat, lng sql.NullFloat64
		)
		err = rows.Scan(
			&je.ID,
			&je.PostID,
			&je.Title,
			&je.Description,
			&je.Date,
			&je.LocationName,
			&lat,
			&lng,
			&je.CreatedAt,
			&je.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan joined event: %w", err)
		}
		setCoordinates(&je.Event, lat, lng)
		events = append(events, je)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating joined events: %w", err)
	}

	return events, nil
}

func (s *Storage) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func checkPostAuthor(ctx context.Context, tx *sql.Tx, postID int, userID string) error {
	var authorID string
	err := tx.QueryRowContext(ctx, `SELECT author_id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrPostNotFound
		}
		return fmt.Errorf("failed to get post author: %w", err)
	}

	if authorID != userID {
		return storage.ErrForbidden
	}

	return nil
}

// checkUpcoming locks the event row so it cannot be deleted while participation changes.
// The date is compared on the application clock, the same one event details report is_past with.
func checkUpcoming(ctx context.Context, tx *sql.Tx, eventID int) error {
	event := models.Event{ID: eventID}
	err := tx.QueryRowContext(ctx, `SELECT date FROM events WHERE id = $1 FOR SHARE`, eventID).Scan(&event.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event date: %w", err)
	}

	if event.IsPast(time.Now()) {
		return storage.ErrEventInPast
	}

	return nil
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Image,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		event    models.Event
		lat, lng sql.NullFloat64
	)
	err := row.Scan(
		&event.ID,
		&event.PostID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.LocationName,
		&lat,
		&lng,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	setCoordinates(&event, lat, lng)

	return &event, nil
}

func setCoordinates(event *models.Event, lat, lng sql.NullFloat64) {
	if lat.Valid && lng.Valid {
		event.SetCoordinates(models.Coordinates{Latitude: lat.Float64, Longitude: lng.Float64})
	}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
