package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"quizzer/internal/core"
	"quizzer/internal/http/handler/middleware"
	"quizzer/internal/http/payload"
	"quizzer/internal/importer"

	"go.uber.org/zap"
)

var (
	Root         = "GET /{$}"
	LoginPage    = "GET /login"
	RegisterPage = "GET /register"
	HomePage     = "GET /home"
	Login        = "POST /login"
	Register     = "POST /register"
	EndQuiz      = "POST /endQuiz"
	Upload       = "POST /upload"
	Static       = "GET /"
)

// SessionCookie is the cookie holding the signed session token. Only the
// token travels to the client, user state is re-read from the store on every
// request.
const SessionCookie = "quiz_session"

type QuizHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	quizzer          QuizService
	importer         QuestionImporter
	publicDir        string
}

func NewQuizHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, quizService QuizService, questionImporter QuestionImporter, publicDir string) *QuizHandler {
	return &QuizHandler{
		logs:             logger,
		requestValidator: requestValidator,
		quizzer:          quizService,
		importer:         questionImporter,
		publicDir:        publicDir,
	}
}

// HandleRoot gates the landing page: active sessions go to /home, everyone
// else sees the login page.
func (h *QuizHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if h.activeSession(r) {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}
	h.servePage(w, r, "login.html")
}

func (h *QuizHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.activeSession(r) {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}
	h.servePage(w, r, "login.html")
}

func (h *QuizHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "register.html")
}

func (h *QuizHandler) HandleHomePage(w http.ResponseWriter, r *http.Request) {
	if !h.activeSession(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.servePage(w, r, "home.html")
}

func (h *QuizHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	creds := payload.CredentialsRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := creds.Validate(); err != nil {
		// an empty field can never match a stored credential, respond
		// exactly as a failed lookup would
		h.respondText(w, msgInvalidCredentials, http.StatusUnauthorized)
		h.logs.Errorw("login payload validation failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.quizzer.Authenticate(r.Context(), creds.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respondText(w, msgInvalidCredentials, http.StatusUnauthorized)
		} else {
			h.respondText(w, oopsErr, http.StatusInternalServerError)
		}
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *QuizHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	creds := payload.CredentialsRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := creds.Validate(); err != nil {
		h.respondText(w, fmt.Sprintf("invalid request payload: %s", err), http.StatusBadRequest)
		h.logs.Errorw("register payload validation failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if err := h.quizzer.Register(r.Context(), creds.ToMessage()); err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.respondText(w, msgUsernameTaken, http.StatusConflict)
		} else {
			h.respondText(w, oopsErr, http.StatusInternalServerError)
		}
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *QuizHandler) HandleEndQuiz(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := sessionToken(r)
	if token == "" {
		h.respondText(w, msgNotAuthenticated, http.StatusUnauthorized)
		h.logs.Errorw("quiz completion without a session",
			"handler", EndQuiz,
			"request_id", requestId)
		return
	}

	var result payload.QuizResultRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &result); err != nil {
		h.respondText(w, fmt.Sprintf("invalid request payload: %s", err), http.StatusBadRequest)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EndQuiz,
			"request_id", requestId)
		return
	}

	if err := h.quizzer.CompleteQuiz(r.Context(), token, result.ToMessage()); err != nil {
		switch {
		case errors.Is(err, core.ErrNotAuthenticated):
			h.respondText(w, msgNotAuthenticated, http.StatusUnauthorized)
		case errors.Is(err, core.ErrUserNotFound):
			h.respondText(w, msgUserNotFound, http.StatusNotFound)
		default:
			h.respondText(w, oopsErr, http.StatusInternalServerError)
		}
		h.logs.Errorw("quiz completion failed",
			"error", err,
			"handler", EndQuiz,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/final.html", http.StatusFound)
}

func (h *QuizHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondText(w, msgNoFile, http.StatusBadRequest)
		h.logs.Errorw("upload without a file",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}
	defer file.Close()

	upload := importer.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	}

	count, err := h.importer.Import(r.Context(), upload)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedType) {
			h.respondText(w, msgUnsupportedType, http.StatusBadRequest)
		} else {
			h.respondText(w, oopsErr, http.StatusInternalServerError)
		}
		h.logs.Errorw("question import failed",
			"error", err,
			"filename", header.Filename,
			"handler", Upload,
			"request_id", requestId)
		return
	}

	h.logs.Infow("question bank imported",
		"filename", header.Filename,
		"count", count,
		"handler", Upload,
		"request_id", requestId)

	h.respondText(w, msgUploadSuccess, http.StatusOK)
}

func (h *QuizHandler) activeSession(r *http.Request) bool {
	_, err := h.quizzer.SessionUsername(sessionToken(r))
	return err == nil
}

func (h *QuizHandler) servePage(w http.ResponseWriter, r *http.Request, page string) {
	http.ServeFile(w, r, filepath.Join(h.publicDir, page))
}

func (h *QuizHandler) respondText(w http.ResponseWriter, text string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(text)); err != nil {
		h.logs.Errorw("failed to write response", "error", err)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
