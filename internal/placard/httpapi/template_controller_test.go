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

var _ = Describe("TemplateController", func() {
	var controller *httpapi.TemplateController
	var mockService *mockusecases.MockTemplateService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockTemplateService(ctrl)
		controller = httpapi.NewTemplateController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("getTemplate", func() {
		It("should return the current template", func() {
			mockService.EXPECT().Get().Return(domain.DefaultTemplateConfig())

			request := httptest.NewRequest("GET", "/v1/template", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["page_size"]).To(Equal("A4"))
			Expect(response["background"]).To(Equal("default"))
			Expect(response["show_borders"]).To(BeTrue())

			fields, ok := response["fields"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(fields).To(HaveKey("name"))
			Expect(fields).To(HaveKey("price"))
			Expect(fields).To(HaveKey("date"))
			Expect(fields).To(HaveKey("code"))

			code, ok := fields["code"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(code).To(HaveKey("image_size"))
		})
	})

	Context("dispatchAction", func() {
		When("the action moves a field", func() {
			It("should reply with the updated template", func() {
				updated := domain.DefaultTemplateConfig()
				field := updated.Fields[domain.FieldPrice]
				field.Rect = domain.Rect{X: 40, Y: 120, Width: 200, Height: 50}
				updated.Fields[domain.FieldPrice] = field

				mockService.EXPECT().
					Dispatch(usecases.SetFieldRect{
						Key:  domain.FieldPrice,
						Rect: domain.Rect{X: 40, Y: 120, Width: 200, Height: 50},
					}).
					Return(updated, nil)

				body := `{"type":"set_field_rect","field":"price","rect":{"x":40,"y":120,"width":200,"height":50}}`
				request := httptest.NewRequest("POST", "/v1/template/actions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				fields := response["fields"].(map[string]any)
				price := fields["price"].(map[string]any)
				rect := price["rect"].(map[string]any)
				Expect(rect["x"]).To(BeNumerically("==", 40))
				Expect(rect["y"]).To(BeNumerically("==", 120))
			})
		})

		When("the action type is unknown", func() {
			It("should return bad request", func() {
				body := `{"type":"rotate_field","field":"price"}`
				request := httptest.NewRequest("POST", "/v1/template/actions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("a required member is missing", func() {
			It("should return bad request", func() {
				body := `{"type":"set_field_rect","field":"price"}`
				request := httptest.NewRequest("POST", "/v1/template/actions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the action names an unknown field", func() {
			It("should return bad request", func() {
				mockService.EXPECT().
					Dispatch(gomock.Any()).
					Return(domain.TemplateConfig{}, usecases.ErrUnknownField)

				body := `{"type":"set_field_visible","field":"discount","visible":false}`
				request := httptest.NewRequest("POST", "/v1/template/actions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the service fails", func() {
			It("should return internal server error", func() {
				mockService.EXPECT().
					Dispatch(gomock.Any()).
					Return(domain.TemplateConfig{}, errors.New("boom"))

				body := `{"type":"set_borders","enabled":true}`
				request := httptest.NewRequest("POST", "/v1/template/actions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
