package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/kartavya/website/internal/app/controllers"
	"github.com/kartavya/website/internal/pkg/ogimage"
)

var _ = Describe("OGImageController", func() {
	var router *gin.Engine

	mount := func(render func(string, string) string) {
		router = gin.New()
		h := controllers.NewOGImageController(render, 3600, nil, zerolog.Nop())
		router.GET("/og-image", h.Image)
		router.POST("/og-image", h.Image)
		router.OPTIONS("/og-image", h.Preflight)
	}

	do := func(method, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	expectCORS := func(w *httptest.ResponseRecorder) {
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(w.Header().Get("Access-Control-Allow-Methods")).To(Equal("GET, POST, OPTIONS"))
		Expect(w.Header().Get("Access-Control-Allow-Headers")).To(Equal("Content-Type"))
	}

	BeforeEach(func() {
		mount(ogimage.Render)
	})

	It("renders the default card", func() {
		w := do(http.MethodGet, "/og-image")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("image/svg+xml"))
		Expect(w.Header().Get("Cache-Control")).To(Equal("public, max-age=3600"))
		Expect(w.Body.String()).To(ContainSubstring(ogimage.DefaultTitle))
		expectCORS(w)
	})

	It("escapes markup in the title", func() {
		w := do(http.MethodGet, "/og-image?title=%3Cscript%3E")

		Expect(w.Body.String()).To(ContainSubstring("&lt;script&gt;"))
		Expect(w.Body.String()).NotTo(ContainSubstring("<script>"))
	})

	It("answers POST the same way", func() {
		w := do(http.MethodPost, "/og-image?title=Hello")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Hello"))
	})

	It("answers preflight with an empty body", func() {
		w := do(http.MethodOptions, "/og-image")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.Len()).To(BeZero())
		expectCORS(w)
	})

	It("returns 500 text when rendering panics", func() {
		mount(func(string, string) string { panic("boom") })
		w := do(http.MethodGet, "/og-image")

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain")).To(BeTrue())
		Expect(w.Body.String()).To(Equal("Error generating image"))
		expectCORS(w)
	})
})
