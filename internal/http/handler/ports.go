package handler

import (
	"context"
	"net/http"
	"quizzer/internal/core"
	"quizzer/internal/importer"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name QuizService . QuizService
type QuizService interface {
	Register(ctx context.Context, msg core.CredentialsMessage) error
	Authenticate(ctx context.Context, msg core.CredentialsMessage) (string, error)
	SessionUsername(token string) (string, error)
	CompleteQuiz(ctx context.Context, token string, msg core.QuizResultMessage) error
}

//counterfeiter:generate -o fake -fake-name QuestionImporter . QuestionImporter
type QuestionImporter interface {
	Import(ctx context.Context, upload importer.Upload) (int, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
