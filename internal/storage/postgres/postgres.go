package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tutors-service/internal/models"
	"tutors-service/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// #### classes/create ####

func (s *Storage) BeginTx(ctx context.Context) (storage.Tx, error) {
	const op = "storage.postgres.BeginTx"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tx, nil
}

func (s *Storage) InsertTutor(ctx context.Context, tx storage.Tx, tutor *models.Tutor) (int64, error) {
	const op = "storage.postgres.InsertTutor"

	var id int64

	err := tx.(*sql.Tx).QueryRowContext(ctx,
		`INSERT INTO users (name, avatar, whatsapp, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		tutor.Name,
		tutor.Avatar,
		tutor.Whatsapp,
		tutor.Bio,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) InsertClass(ctx context.Context, tx storage.Tx, class *models.Class) (int64, error) {
	const op = "storage.postgres.InsertClass"

	var id int64

	err := tx.(*sql.Tx).QueryRowContext(ctx,
		`INSERT INTO classes (subject, cost, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		class.Subject,
		class.Cost,
		class.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) InsertScheduleSlot(ctx context.Context, tx storage.Tx, slot *models.ScheduleSlot) error {
	const op = "storage.postgres.InsertScheduleSlot"

	_, err := tx.(*sql.Tx).ExecContext(ctx,
		`INSERT INTO class_schedule (class_id, week_day, "from", "to")
		VALUES ($1, $2, $3, $4)`,
		slot.ClassID,
		slot.WeekDay,
		slot.From,
		slot.To,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// #### classes/search ####

func (s *Storage) SearchClasses(ctx context.Context, subject string, weekDay, minutes int) ([]*models.ClassWithTutor, error) {
	const op = "storage.postgres.SearchClasses"

	rows, err := s.db.QueryContext(ctx,
		`SELECT classes.id, classes.subject, classes.cost, users.id,
			users.name, users.avatar, users.whatsapp, users.bio
		FROM classes
		JOIN users ON users.id = classes.user_id
		WHERE classes.subject = $1
		AND EXISTS (
			SELECT 1 FROM class_schedule
			WHERE class_schedule.class_id = classes.id
			AND class_schedule.week_day = $2
			AND class_schedule."from" <= $3
			AND class_schedule."to" > $3
		)
		ORDER BY classes.id`,
		subject,
		weekDay,
		minutes,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var classes []*models.ClassWithTutor

	for rows.Next() {
		var class models.ClassWithTutor

		err := rows.Scan(
			&class.ClassID,
			&class.Subject,
			&class.Cost,
			&class.UserID,
			&class.Name,
			&class.Avatar,
			&class.Whatsapp,
			&class.Bio,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return classes, nil
}

// #### connections ####

func (s *Storage) CountConnections(ctx context.Context) (int64, error) {
	const op = "storage.postgres.CountConnections"

	var total int64

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM connections`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) InsertConnection(ctx context.Context, userID int64) error {
	const op = "storage.postgres.InsertConnection"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (user_id) VALUES ($1)`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
