package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quizzer/internal/db"
	"quizzer/internal/repository"
	"quizzer/internal/repository/fake"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and attempt tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.QuizAttempt{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				PasswordHash: "hash",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("saving succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should save the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, records := fakeStorage.SaveToTableArgsForCall(0)
				Expect(records).To(Equal(&[]repository.User{user}))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					u := entity.(*repository.User)
					u.Username = "alice"
					u.PasswordHash = "hash"
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RecordAttempt", func() {
		var (
			update repository.AttemptUpdate
			err    error
		)

		BeforeEach(func() {
			update = repository.AttemptUpdate{
				Score:         7,
				DurationLabel: "100 seconds",
				StartTime:     time.UnixMilli(1700000000000),
				EndTime:       time.UnixMilli(1700000100000),
				Duration:      100,
			}
		})

		When("running against a database", func() {
			var (
				mock   sqlmock.Sqlmock
				mockDb *sql.DB
			)

			BeforeEach(func() {
				var openErr error
				mockDb, mock, openErr = sqlmock.New()
				Expect(openErr).NotTo(HaveOccurred())

				dialector := postgres.New(postgres.Config{
					Conn:       mockDb,
					DriverName: "postgres",
				})

				gormDB, openErr := gorm.Open(dialector, &gorm.Config{})
				Expect(openErr).NotTo(HaveOccurred())

				repo = repository.NewUserRepository(&db.PostgresDB{DB: gormDB})
			})

			AfterEach(func() {
				mock.ExpectClose()
				Expect(mockDb.Close()).To(Succeed())
			})

			JustBeforeEach(func() {
				err = repo.RecordAttempt(ctx, "alice", update)
			})

			When("the user exists", func() {
				BeforeEach(func() {
					mock.ExpectBegin()
					mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
						WithArgs("alice", 1).
						WillReturnRows(sqlmock.NewRows([]string{"id", "username", "attempts"}).
							AddRow("user-1", "alice", 2))
					mock.ExpectExec(`UPDATE "users" SET`).
						WillReturnResult(sqlmock.NewResult(0, 1))
					mock.ExpectQuery(`INSERT INTO "quiz_attempts"`).
						WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
					mock.ExpectCommit()
				})

				It("should apply all three mutations in one transaction", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})

			When("the user vanished", func() {
				BeforeEach(func() {
					mock.ExpectBegin()
					mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
						WithArgs("alice", 1).
						WillReturnError(gorm.ErrRecordNotFound)
					mock.ExpectRollback()
				})

				It("should roll back and report user not found", func() {
					Expect(err).To(MatchError(repository.ErrUserNotFound))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})

			When("the update fails", func() {
				BeforeEach(func() {
					mock.ExpectBegin()
					mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
						WithArgs("alice", 1).
						WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
							AddRow("user-1", "alice"))
					mock.ExpectExec(`UPDATE "users" SET`).
						WillReturnError(errors.New("update error"))
					mock.ExpectRollback()
				})

				It("should roll back and return an error", func() {
					Expect(err).To(HaveOccurred())
					Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})
		})

		When("the storage transaction fails", func() {
			BeforeEach(func() {
				fakeStorage.TransactReturns(fakeErr)
			})

			JustBeforeEach(func() {
				err = repo.RecordAttempt(ctx, "alice", update)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.TransactCallCount()).To(Equal(1))
			})
		})
	})
})
