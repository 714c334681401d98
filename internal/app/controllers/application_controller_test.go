package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kartavya/website/internal/app/controllers"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/pkg/apperrors"
)

var _ = Describe("ApplicationController", func() {
	var (
		router *gin.Engine
		svc    *mockApplicationService
	)

	post := func(body interface{}, headers map[string]string) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		router = gin.New()
		svc = &mockApplicationService{}
		h := controllers.NewApplicationController(svc)
		router.POST("/applications", h.SubmitApplication)
	})

	It("returns 201 when the application is stored", func() {
		w := post(validApplication(), nil)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(svc.calls).To(HaveLen(1))
		Expect(svc.calls[0].app).To(Equal(validApplication()))
	})

	It("prefers the Idempotency-Key header over the body token", func() {
		body := map[string]interface{}{
			"ngo_name": "Seva Trust", "contact_person": "Asha Rao", "email": "asha@seva.org",
			"phone": "1", "description": "d", "pitch_deck_url": "https://x.org/deck",
			"client_token": "0b7c2d4e-1111-4aaa-8bbb-123456789abc",
		}
		w := post(body, map[string]string{controllers.IdempotencyKeyHeader: "5f0c6a7e-2222-4ccc-9ddd-abcdefabcdef"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(svc.calls[0].token).To(Equal("5f0c6a7e-2222-4ccc-9ddd-abcdefabcdef"))
	})

	It("reports replays as success", func() {
		svc.submitFn = func(models.Application, string) (services.SubmissionResult, error) {
			return services.SubmissionResult{Duplicate: true}, nil
		}
		w := post(validApplication(), nil)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(ContainSubstring(`"duplicate":true`))
	})

	It("returns 400 with field details and never calls the service on invalid input", func() {
		app := validApplication()
		app.Email = "not-an-email"
		app.NGOName = ""
		w := post(app, nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(svc.calls).To(BeEmpty())
		Expect(w.Body.String()).To(ContainSubstring(`"email"`))
		Expect(w.Body.String()).To(ContainSubstring(`"ngo_name"`))
	})

	It("returns 400 on a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 with the generic message when the insert fails", func() {
		svc.submitFn = func(models.Application, string) (services.SubmissionResult, error) {
			return services.SubmissionResult{}, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, errors.New("connection reset"))
		}
		w := post(validApplication(), nil)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring(apperrors.SubmissionFailedMessage))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
	})
})
