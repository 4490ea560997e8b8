package core

import (
	"context"
	"errors"
	"fmt"
	"quizzer/internal/repository"
	tokenIssuer "quizzer/pkg/jwt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var TimeNow = time.Now

var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUsernameTaken error = errors.New("username already exists")
var ErrNotAuthenticated error = errors.New("user not authenticated")
var ErrUserNotFound error = errors.New("user not found")

const bcryptCost = 10
const sessionExpiration = 24 // hours

// Quizzer is the application core: registration, login and the quiz session
// lifecycle.
type Quizzer struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewQuizzer(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Quizzer {
	return &Quizzer{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register creates a new user with a bcrypt hashed password. Score and
// attempts start at zero and stay there until the first completed quiz.
func (q *Quizzer) Register(ctx context.Context, msg CredentialsMessage) error {
	_, err := q.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
	}
	if err = q.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	q.logs.Infow("user registered", "username", msg.Username)
	return nil
}

// Authenticate verifies the credentials and returns a signed session token.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (q *Quizzer) Authenticate(ctx context.Context, msg CredentialsMessage) (string, error) {
	user, err := q.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: sessionExpiration,
	}
	token := q.jwtIssuer.Generate(tokenInfo)
	signed, err := q.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// SessionUsername resolves a session token to the username it was issued
// for. It is the gatekeeper primitive for protected routes.
func (q *Quizzer) SessionUsername(token string) (string, error) {
	if token == "" {
		return "", ErrNotAuthenticated
	}

	claims, err := q.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotAuthenticated, err)
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrNotAuthenticated
	}

	return username, nil
}

// CompleteQuiz records one finished quiz for the session user: the latest
// score and duration label are set, the attempts counter goes up by one and
// an attempt record is appended, all atomically. Elapsed time is measured
// against the server clock so the client cannot tamper with the duration.
func (q *Quizzer) CompleteQuiz(ctx context.Context, token string, msg QuizResultMessage) error {
	username, err := q.SessionUsername(token)
	if err != nil {
		return err
	}

	endTime := TimeNow()
	startTime := time.UnixMilli(msg.StartTimeMillis)
	elapsed := endTime.Sub(startTime).Seconds()

	update := repository.AttemptUpdate{
		Score:         msg.Score,
		DurationLabel: strconv.FormatFloat(elapsed, 'f', -1, 64) + " seconds",
		StartTime:     startTime,
		EndTime:       endTime,
		Duration:      elapsed,
	}

	if err = q.repo.RecordAttempt(ctx, username, update); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("record attempt: %w", err)
	}

	q.logs.Infow("quiz completed",
		"username", username,
		"score", msg.Score,
		"duration_seconds", elapsed)

	return nil
}
