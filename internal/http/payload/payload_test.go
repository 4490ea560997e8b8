package payload_test

import (
	"net/http/httptest"
	"strings"

	"quizzer/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	Describe("CredentialsRequest", func() {
		It("should accept a complete request", func() {
			req := payload.CredentialsRequest{Username: "alice", Password: "secret"}
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject a missing username", func() {
			req := payload.CredentialsRequest{Password: "secret"}
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a missing password", func() {
			req := payload.CredentialsRequest{Username: "alice"}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("QuizResultRequest", func() {
		It("should accept a complete result", func() {
			req := payload.QuizResultRequest{Score: 7, StartTime: 1700000000000, CurrentQuestionIndex: 9}
			Expect(req.Validate()).To(Succeed())
		})

		It("should accept a zero score", func() {
			req := payload.QuizResultRequest{Score: 0, StartTime: 1700000000000}
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject a missing start time", func() {
			req := payload.QuizResultRequest{Score: 7}
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a negative score", func() {
			req := payload.QuizResultRequest{Score: -1, StartTime: 1700000000000}
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a negative question index", func() {
			req := payload.QuizResultRequest{Score: 7, StartTime: 1700000000000, CurrentQuestionIndex: -1}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("Decoder", func() {
		var decoder payload.Decoder

		It("should decode and validate a payload", func() {
			r := httptest.NewRequest("POST", "/endQuiz",
				strings.NewReader(`{"score":7,"startTime":1700000000000,"currentQuestionIndex":9}`))

			var result payload.QuizResultRequest
			Expect(decoder.DecodeJSONPayload(r, &result)).To(Succeed())
			Expect(result.Score).To(Equal(7.0))
			Expect(result.StartTime).To(Equal(int64(1700000000000)))
		})

		It("should reject unknown fields", func() {
			r := httptest.NewRequest("POST", "/endQuiz",
				strings.NewReader(`{"score":7,"startTime":1700000000000,"bogus":true}`))

			var result payload.QuizResultRequest
			Expect(decoder.DecodeJSONPayload(r, &result)).To(HaveOccurred())
		})

		It("should surface validation failures", func() {
			r := httptest.NewRequest("POST", "/endQuiz",
				strings.NewReader(`{"score":7}`))

			var result payload.QuizResultRequest
			Expect(decoder.DecodeJSONPayload(r, &result)).To(HaveOccurred())
		})
	})
})
