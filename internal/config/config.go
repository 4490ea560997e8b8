package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey    = "API_PORT"
	dbConnEnvKey     = "DB_CONNECTION_URL"
	jwtSecretEnvKey  = "JWT_SECRET"
	publicDirEnvKey  = "PUBLIC_DIR"
	uploadsDirEnvKey = "UPLOADS_DIR"
	bankFileEnvKey   = "QUESTION_BANK_FILE"

	defaultPort     = "3000"
	defaultPublic   = "public"
	defaultUploads  = "uploads"
	defaultBankFile = "uploadedQuestions.json"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	PublicDir       string
	UploadsDir      string
	// QuestionBankPath is where the importer publishes the JSON artifact the
	// quiz front-end loads. It lives under PublicDir so the static file
	// server exposes it.
	QuestionBankPath string
}

func NewApp() (App, error) {
	// a missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load()

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	publicDir := getEnv(publicDirEnvKey, defaultPublic)

	return App{
		Port:             getEnv(apiPortEnvKey, defaultPort),
		DBConnectionURL:  dbConn,
		JWTSecret:        jwtSecret,
		PublicDir:        publicDir,
		UploadsDir:       getEnv(uploadsDirEnvKey, defaultUploads),
		QuestionBankPath: filepath.Join(publicDir, getEnv(bankFileEnvKey, defaultBankFile)),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
