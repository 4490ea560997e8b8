package payload

import (
	"quizzer/internal/core"

	"github.com/jellydator/validation"
)

type QuizResultRequest struct {
	Score float64 `json:"score"`
	// StartTime is the client's quiz start instant in epoch milliseconds.
	StartTime int64 `json:"startTime"`
	// CurrentQuestionIndex is carried by the front-end but unused by the
	// backend.
	CurrentQuestionIndex int `json:"currentQuestionIndex"`
}

func (q QuizResultRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.StartTime, validation.Required, validation.Min(int64(0))),
		validation.Field(&q.Score, validation.Min(float64(0))),
		validation.Field(&q.CurrentQuestionIndex, validation.Min(0)),
	)
}

func (q QuizResultRequest) ToMessage() core.QuizResultMessage {
	return core.QuizResultMessage{
		Score:                q.Score,
		StartTimeMillis:      q.StartTime,
		CurrentQuestionIndex: q.CurrentQuestionIndex,
	}
}
