package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tutors-service/api"
	"tutors-service/internal/lock"
	"tutors-service/internal/models"
	"tutors-service/internal/storage"
	"tutors-service/pkg/response"
	"tutors-service/pkg/timeconv"
)

type Service struct {
	store  Store
	locker lock.Locker
}

func NewService(store Store, locker lock.Locker) *Service {
	return &Service{store: store, locker: locker}
}

type Store interface {
	BeginTx(ctx context.Context) (storage.Tx, error)

	// Classes
	InsertTutor(ctx context.Context, tx storage.Tx, tutor *models.Tutor) (int64, error)
	InsertClass(ctx context.Context, tx storage.Tx, class *models.Class) (int64, error)
	InsertScheduleSlot(ctx context.Context, tx storage.Tx, slot *models.ScheduleSlot) error
	SearchClasses(ctx context.Context, subject string, weekDay, minutes int) ([]*models.ClassWithTutor, error)

	// Connections
	CountConnections(ctx context.Context) (int64, error)
	InsertConnection(ctx context.Context, userID int64) error
}

const registerLockTTL = 10 * time.Second

// Classes

// SearchClasses returns every class whose subject matches exactly and whose
// schedule has a slot covering the given weekday and time of day. All three
// filters are mandatory; nothing touches storage until they validate.
func (s *Service) SearchClasses(ctx context.Context, query *api.SearchQuery) ([]*api.ClassResponse, error) {
	const op = "service.SearchClasses"

	if query.WeekDay == "" || query.Subject == "" || query.Time == "" {
		return nil, fmt.Errorf("%s: %w", op, response.ErrMissingFilters)
	}

	weekDay, err := strconv.Atoi(query.WeekDay)
	if err != nil || weekDay < 0 || weekDay > 6 {
		return nil, fmt.Errorf("%s: %w", op, response.ErrInvalidWeekDay)
	}

	minutes, err := timeconv.ToMinutes(query.Time)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrInvalidTime)
	}

	classes, err := s.store.SearchClasses(ctx, query.Subject, weekDay, minutes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ClassResponse, 0, len(classes))
	for _, class := range classes {
		result = append(result, &api.ClassResponse{
			ID:       class.ClassID,
			Subject:  class.Subject,
			Cost:     class.Cost,
			UserID:   class.UserID,
			Name:     class.Name,
			Avatar:   class.Avatar,
			Whatsapp: class.Whatsapp,
			Bio:      class.Bio,
		})
	}

	return result, nil
}

// RegisterClass creates the tutor, the class and its schedule slots as one
// all-or-nothing unit. The redis lock serializes concurrent submissions for
// the same contact handle; it does not make the operation idempotent —
// repeating an identical request creates a second class.
func (s *Service) RegisterClass(ctx context.Context, req *api.RegisterClassRequest) error {
	const op = "service.RegisterClass"

	slots, err := convertSchedule(req.Schedule)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lockKey := fmt.Sprintf("register:%s", req.Whatsapp)

	locked, err := s.locker.Lock(ctx, lockKey, registerLockTTL)
	if err != nil {
		return fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return fmt.Errorf("%s: %w", op, response.ErrLocked)
	}
	defer func() {
		_ = s.locker.Unlock(ctx, lockKey)
	}()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	tutorID, err := s.store.InsertTutor(ctx, tx, &models.Tutor{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Whatsapp: req.Whatsapp,
		Bio:      req.Bio,
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%s: insert tutor: %w", op, err)
	}

	classID, err := s.store.InsertClass(ctx, tx, &models.Class{
		Subject: req.Subject,
		Cost:    req.Cost,
		UserID:  tutorID,
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%s: insert class: %w", op, err)
	}

	for _, slot := range slots {
		slot.ClassID = classID

		if err := s.store.InsertScheduleSlot(ctx, tx, slot); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s: insert schedule slot: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// convertSchedule validates and normalizes schedule items before any
// mutation. Each slot must land on a real weekday and satisfy from < to
// after conversion to minute offsets.
func convertSchedule(items []api.ScheduleItem) ([]*models.ScheduleSlot, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("empty schedule: %w", response.ErrBadRequest)
	}

	slots := make([]*models.ScheduleSlot, 0, len(items))

	for _, item := range items {
		if item.WeekDay < 0 || item.WeekDay > 6 {
			return nil, fmt.Errorf("week_day %d: %w", item.WeekDay, response.ErrInvalidWeekDay)
		}

		from, err := timeconv.ToMinutes(item.From)
		if err != nil {
			return nil, fmt.Errorf("from: %w", response.ErrInvalidTime)
		}

		to, err := timeconv.ToMinutes(item.To)
		if err != nil {
			return nil, fmt.Errorf("to: %w", response.ErrInvalidTime)
		}

		if from >= to {
			return nil, fmt.Errorf("slot does not satisfy from < to: %w", response.ErrBadRequest)
		}

		slots = append(slots, &models.ScheduleSlot{
			WeekDay: item.WeekDay,
			From:    from,
			To:      to,
		})
	}

	return slots, nil
}

// Connections

func (s *Service) CountConnections(ctx context.Context) (int64, error) {
	const op = "service.CountConnections"

	total, err := s.store.CountConnections(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) RecordConnection(ctx context.Context, userID int64) error {
	const op = "service.RecordConnection"

	if err := s.store.InsertConnection(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
