package repository

import "time"

type User struct {
	ID           string  `gorm:"primaryKey;autoIncrement:false"`
	Username     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Score        float64 `gorm:"not null;default:0"` // latest score, overwritten each completion
	Attempts     int     `gorm:"not null;default:0"`
	LastQuizTime string  `gorm:"type:varchar(64)"` // human readable duration of the last attempt

	QuizAttempts []QuizAttempt `gorm:"foreignKey:UserID"`
}

type QuizAttempt struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	Duration  float64   `gorm:"not null"` // seconds
}
