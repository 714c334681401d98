package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kartavya/website/internal/app/controllers"
)

var _ = Describe("HealthController", func() {
	serve := func(p controllers.Pinger) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/health", controllers.NewHealthController(p).Health)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		return w
	}

	It("reports ok when the database answers", func() {
		w := serve(mockPinger{})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
	})

	It("stays up but degraded when the ping fails", func() {
		w := serve(mockPinger{err: errors.New("refused")})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"degraded"`))
		Expect(w.Body.String()).To(ContainSubstring(`"database":"down"`))
	})
})
