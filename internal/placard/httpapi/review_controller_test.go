package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/httpapi"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ReviewController", func() {
	var controller *httpapi.ReviewController
	var mockService *mockusecases.MockReviewService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockReviewService(ctrl)
		controller = httpapi.NewReviewController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("snapshot", func() {
		It("should return the current run state", func() {
			mockService.EXPECT().Snapshot().Return(usecases.ReviewSnapshot{
				Phase:        usecases.PhaseReviewing,
				CurrentIndex: 2,
				Total:        5,
				Confirmed:    []int{0},
				Skipped:      []domain.SkippedProduct{{Index: 1, Reasons: []string{"missing price"}}},
			})

			request := httptest.NewRequest("GET", "/v1/review", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["phase"]).To(Equal("reviewing"))
			Expect(response["current_index"]).To(BeNumerically("==", 2))
			Expect(response["total"]).To(BeNumerically("==", 5))

			skipped, ok := response["skipped"].([]any)
			Expect(ok).To(BeTrue())
			Expect(skipped).To(HaveLen(1))
		})
	})

	Context("start", func() {
		When("products are loaded", func() {
			It("should return the first render outcome", func() {
				mockService.EXPECT().Start(gomock.Any()).Return(usecases.ReviewStep{
					Phase: usecases.PhaseReviewing,
					Outcome: &usecases.RenderOutcome{
						Index: 0,
						Verdict: domain.PlacardVerdict{
							Valid:      true,
							PreviewURL: "/static/previews/p0.png",
						},
					},
				}, nil)

				request := httptest.NewRequest("POST", "/v1/review/start", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["phase"]).To(Equal("reviewing"))

				outcome, ok := response["outcome"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(outcome["index"]).To(BeNumerically("==", 0))
				verdict := outcome["verdict"].(map[string]any)
				Expect(verdict["valid"]).To(BeTrue())
			})
		})

		When("no products are loaded", func() {
			It("should return conflict", func() {
				mockService.EXPECT().
					Start(gomock.Any()).
					Return(usecases.ReviewStep{Phase: usecases.PhaseIdle}, usecases.ErrNoProductsLoaded)

				request := httptest.NewRequest("POST", "/v1/review/start", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Context("confirm", func() {
		When("the last product is confirmed", func() {
			It("should return the assembled document", func() {
				mockService.EXPECT().Confirm(gomock.Any()).Return(usecases.ReviewStep{
					Phase: usecases.PhaseDone,
					Result: &usecases.ReviewResult{
						Document: domain.AssembledDocument{
							DocumentURL: "/static/pdfs/placas.pdf",
							Report: domain.Report{
								TotalProducts: 3,
								ValidCount:    3,
								InvalidCount:  0,
							},
						},
					},
				}, nil)

				request := httptest.NewRequest("POST", "/v1/review/confirm", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["phase"]).To(Equal("done"))

				result, ok := response["result"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(result["document_url"]).To(Equal("/static/pdfs/placas.pdf"))
				report := result["report"].(map[string]any)
				Expect(report["valid_count"]).To(BeNumerically("==", 3))
			})
		})

		When("no run is active", func() {
			It("should return conflict", func() {
				mockService.EXPECT().
					Confirm(gomock.Any()).
					Return(usecases.ReviewStep{Phase: usecases.PhaseIdle}, usecases.ErrReviewNotActive)

				request := httptest.NewRequest("POST", "/v1/review/confirm", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Context("skip", func() {
		It("should pass the reasons through", func() {
			mockService.EXPECT().
				Skip(gomock.Any(), []string{"preco ausente"}).
				Return(usecases.ReviewStep{
					Phase: usecases.PhaseReviewing,
					Outcome: &usecases.RenderOutcome{
						Index:   1,
						Verdict: domain.PlacardVerdict{Valid: true},
					},
				}, nil)

			body := `{"reasons":["preco ausente"]}`
			request := httptest.NewRequest("POST", "/v1/review/skip", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("finalize", func() {
		When("nothing was confirmed", func() {
			It("should return unprocessable entity", func() {
				mockService.EXPECT().
					Finalize(gomock.Any()).
					Return(usecases.ReviewStep{Phase: usecases.PhaseIdle}, usecases.ErrNothingToGenerate)

				request := httptest.NewRequest("POST", "/v1/review/finalize", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})

		When("the rendering service is unreachable", func() {
			It("should return bad gateway", func() {
				mockService.EXPECT().
					Finalize(gomock.Any()).
					Return(usecases.ReviewStep{Phase: usecases.PhaseFinalizing}, errors.New("connection refused"))

				request := httptest.NewRequest("POST", "/v1/review/finalize", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Context("cancel", func() {
		When("a run is active", func() {
			It("should return no content", func() {
				mockService.EXPECT().Cancel().Return(nil)

				request := httptest.NewRequest("DELETE", "/v1/review", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("no run is active", func() {
			It("should return conflict", func() {
				mockService.EXPECT().Cancel().Return(usecases.ErrReviewNotActive)

				request := httptest.NewRequest("DELETE", "/v1/review", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})
})
