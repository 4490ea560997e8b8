package core

type CredentialsMessage struct {
	Username string
	Password string
}

type QuizResultMessage struct {
	Score           float64
	StartTimeMillis int64
	// CurrentQuestionIndex is accepted for wire compatibility with the quiz
	// front-end but takes no part in scoring.
	CurrentQuestionIndex int
}
