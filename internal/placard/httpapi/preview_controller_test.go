package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"placard-server/internal/placard/httpapi"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("PreviewController", func() {
	var controller *httpapi.PreviewController
	var mockService *mockusecases.MockPreviewService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockPreviewService(ctrl)
		controller = httpapi.NewPreviewController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("getCursor", func() {
		It("should return the current position", func() {
			mockService.EXPECT().Current().Return(3)
			mockService.EXPECT().Total().Return(10)

			request := httptest.NewRequest("GET", "/v1/preview/cursor", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["index"]).To(BeNumerically("==", 3))
			Expect(response["total"]).To(BeNumerically("==", 10))
		})
	})

	Context("next", func() {
		It("should return the landed index", func() {
			mockService.EXPECT().Next().Return(4)
			mockService.EXPECT().Total().Return(10)

			request := httptest.NewRequest("POST", "/v1/preview/next", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["index"]).To(BeNumerically("==", 4))
		})
	})

	Context("select", func() {
		It("should return the clamped index", func() {
			mockService.EXPECT().Select(99).Return(9)
			mockService.EXPECT().Total().Return(10)

			request := httptest.NewRequest("POST", "/v1/preview/select", strings.NewReader(`{"index":99}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["index"]).To(BeNumerically("==", 9))
		})
	})

	Context("render", func() {
		When("the render succeeds", func() {
			It("should return the preview url", func() {
				mockService.EXPECT().
					RenderCurrent(gomock.Any()).
					Return("/static/previews/p3.png", nil)

				request := httptest.NewRequest("POST", "/v1/preview/render", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["preview_url"]).To(Equal("/static/previews/p3.png"))
			})
		})

		When("no catalog is loaded", func() {
			It("should return conflict", func() {
				mockService.EXPECT().
					RenderCurrent(gomock.Any()).
					Return("", usecases.ErrNoCatalogLoaded)

				request := httptest.NewRequest("POST", "/v1/preview/render", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})
})
