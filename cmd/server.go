package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"quizzer/internal/config"
	"quizzer/internal/core"
	"quizzer/internal/db"
	"quizzer/internal/http/handler"
	"quizzer/internal/http/handler/middleware"
	"quizzer/internal/http/payload"
	"quizzer/internal/http/server"
	"quizzer/internal/importer"
	"quizzer/internal/repository"
	"quizzer/pkg/jwt"
	"quizzer/pkg/log"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("quizzer", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// core service
	quizzer := core.NewQuizzer(logger, repo, jwtService)

	// question importer
	questionImporter := importer.NewSpreadsheetImporter(
		logger,
		config.UploadsDir,
		config.QuestionBankPath)

	// handler
	quizHlr := handler.NewQuizHandler(
		logger,
		payload.Decoder{},
		quizzer,
		questionImporter,
		config.PublicDir)

	// register routes, most specific patterns win over the static catch-all
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Root, quizHlr.HandleRoot)
	mux.HandleFunc(handler.LoginPage, quizHlr.HandleLoginPage)
	mux.HandleFunc(handler.RegisterPage, quizHlr.HandleRegisterPage)
	mux.HandleFunc(handler.HomePage, quizHlr.HandleHomePage)
	mux.HandleFunc(handler.Login, quizHlr.HandleLogin)
	mux.HandleFunc(handler.Register, quizHlr.HandleRegister)
	mux.HandleFunc(handler.EndQuiz, quizHlr.HandleEndQuiz)
	mux.HandleFunc(handler.Upload, quizHlr.HandleUpload)
	mux.Handle(handler.Static, http.FileServer(http.Dir(config.PublicDir)))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
