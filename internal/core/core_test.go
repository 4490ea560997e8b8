package core_test

import (
	"context"
	"errors"
	"time"

	"quizzer/internal/core"
	"quizzer/internal/core/fake"
	"quizzer/internal/repository"
	tokenIssuer "quizzer/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Quizzer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		quizzer *core.Quizzer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		quizzer = core.NewQuizzer(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.CredentialsMessage
			err error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			err = quizzer.Register(ctx, msg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserReturns(nil)
			})

			It("should persist a new user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.ID).NotTo(BeEmpty())
				Expect(user.Username).To(Equal(msg.Username))
				Expect(user.PasswordHash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password))).To(Succeed())
				Expect(user.Score).To(BeZero())
				Expect(user.Attempts).To(BeZero())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{Username: "testuser"}, nil)
			})

			It("should return username taken and not touch the store", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("persisting the user fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg      core.CredentialsMessage
			token    string
			err      error
			userId   string
			genToken *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = quizzer.Authenticate(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.MinCost)
				Expect(hashErr).NotTo(HaveOccurred())

				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: string(hash),
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed session token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   msg.Username,
					Subject:    userId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(token).To(BeEmpty())
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte("other-password"), bcrypt.MinCost)
				Expect(hashErr).NotTo(HaveOccurred())

				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: string(hash),
				}, nil)
			})

			It("should return the same invalid credentials error as an unknown user", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.MinCost)
				Expect(hashErr).NotTo(HaveOccurred())

				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: string(hash),
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SessionUsername", func() {
		var (
			username string
			err      error
			token    string
		)

		JustBeforeEach(func() {
			username, err = quizzer.SessionUsername(token)
		})

		When("the token is empty", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should return not authenticated without validating", func() {
				Expect(err).To(MatchError(core.ErrNotAuthenticated))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				token = "bad.token"
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return not authenticated", func() {
				Expect(err).To(MatchError(core.ErrNotAuthenticated))
			})
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				token = "good.token"
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("should return the session username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(username).To(Equal("alice"))
			})
		})

		When("the claims carry no username", func() {
			BeforeEach(func() {
				token = "good.token"
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should return not authenticated", func() {
				Expect(err).To(MatchError(core.ErrNotAuthenticated))
			})
		})
	})

	Describe("CompleteQuiz", func() {
		var (
			msg   core.QuizResultMessage
			token string
			err   error
			now   time.Time
		)

		BeforeEach(func() {
			token = "good.token"
			now = time.UnixMilli(1700000100000)
			core.TimeNow = func() time.Time { return now }

			msg = core.QuizResultMessage{
				Score:                7,
				StartTimeMillis:      1700000000000,
				CurrentQuestionIndex: 9,
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			fakeRepo.RecordAttemptReturns(nil)
		})

		AfterEach(func() {
			core.TimeNow = time.Now
		})

		JustBeforeEach(func() {
			err = quizzer.CompleteQuiz(ctx, token, msg)
		})

		When("the session is valid", func() {
			It("should record the attempt atomically with a server-side duration", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.RecordAttemptCallCount()).To(Equal(1))
				_, username, update := fakeRepo.RecordAttemptArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(update.Score).To(Equal(7.0))
				Expect(update.StartTime).To(Equal(time.UnixMilli(1700000000000)))
				Expect(update.EndTime).To(Equal(now))
				Expect(update.Duration).To(BeNumerically("~", 100.0, 1e-9))
				Expect(update.DurationLabel).To(Equal("100 seconds"))
			})
		})

		When("the session token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return not authenticated and record nothing", func() {
				Expect(err).To(MatchError(core.ErrNotAuthenticated))
				Expect(fakeRepo.RecordAttemptCallCount()).To(Equal(0))
			})
		})

		When("the session user no longer exists", func() {
			BeforeEach(func() {
				fakeRepo.RecordAttemptReturns(repository.ErrUserNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("recording the attempt fails", func() {
			BeforeEach(func() {
				fakeRepo.RecordAttemptReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
