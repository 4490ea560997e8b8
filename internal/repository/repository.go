package repository

import (
	"context"
	"errors"
	"fmt"
	"quizzer/internal/db"
	"time"

	"gorm.io/gorm"
)

var ErrUserNotFound error = errors.New("user not found")

// AttemptUpdate carries everything one quiz completion writes to the store.
type AttemptUpdate struct {
	Score         float64
	DurationLabel string
	StartTime     time.Time
	EndTime       time.Time
	Duration      float64
}

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &QuizAttempt{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	users := []User{user}
	if err := r.db.SaveToTable(ctx, &users); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// RecordAttempt applies one completed quiz to the user record: latest score
// and duration label are overwritten, the attempts counter is incremented and
// a QuizAttempt row is appended. All of it happens in one transaction so
// overlapping completions for the same user cannot interleave.
func (r *UserRepository) RecordAttempt(ctx context.Context, username string, update AttemptUpdate) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		var user User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("get user for attempt: %w", err)
		}

		err := tx.Model(&User{}).Where("username = ?", username).Updates(map[string]any{
			"score":          update.Score,
			"last_quiz_time": update.DurationLabel,
			"attempts":       gorm.Expr("attempts + ?", 1),
		}).Error
		if err != nil {
			return fmt.Errorf("update user quiz state: %w", err)
		}

		attempt := QuizAttempt{
			UserID:    user.ID,
			StartTime: update.StartTime,
			EndTime:   update.EndTime,
			Duration:  update.Duration,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return fmt.Errorf("append quiz attempt: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("record attempt: %w", err)
	}

	return nil
}
