package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/httpapi"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CatalogController", func() {
	var controller *httpapi.CatalogController
	var mockService *mockusecases.MockCatalogService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCatalogService(ctrl)
		controller = httpapi.NewCatalogController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newUploadRequest := func(filename string) *http.Request {
		var buffer bytes.Buffer
		writer := multipart.NewWriter(&buffer)
		part, err := writer.CreateFormFile("file", filename)
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write([]byte("Nome do produto,Preço\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.Close()).To(Succeed())

		request := httptest.NewRequest("POST", "/v1/catalog", &buffer)
		request.Header.Set("Content-Type", writer.FormDataContentType())
		return request
	}

	Context("uploadCatalog", func() {
		When("the file is accepted", func() {
			It("should return the parsed catalog and warm barcodes in the background", func() {
				catalog := domain.Catalog{
					Filename: "ofertas.csv",
					Products: []domain.Product{
						{Name: "Arroz 5kg", Price: "R$ 19,90", OfferDate: "01/09/2026", Barcode: "7891234567895"},
					},
					TotalProducts: 1,
					TotalProblems: 0,
				}
				mockService.EXPECT().
					Upload(gomock.Any(), "ofertas.csv", gomock.Any()).
					Return(catalog, nil)

				warmed := make(chan struct{})
				mockService.EXPECT().
					WarmBarcodes(gomock.Any()).
					DoAndReturn(func(context.Context) int {
						close(warmed)
						return 1
					})

				router.ServeHTTP(recorder, newUploadRequest("ofertas.csv"))

				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Eventually(warmed).Should(BeClosed())

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["filename"]).To(Equal("ofertas.csv"))
				Expect(response["total_products"]).To(BeNumerically("==", 1))

				products, ok := response["products"].([]any)
				Expect(ok).To(BeTrue())
				Expect(products).To(HaveLen(1))
				first := products[0].(map[string]any)
				Expect(first["has_ean13"]).To(BeTrue())
			})
		})

		When("the extension is not supported", func() {
			It("should return unsupported media type", func() {
				mockService.EXPECT().
					Upload(gomock.Any(), "ofertas.pdf", gomock.Any()).
					Return(domain.Catalog{}, usecases.ErrUnsupportedFileType)

				router.ServeHTTP(recorder, newUploadRequest("ofertas.pdf"))

				Expect(recorder.Code).To(Equal(http.StatusUnsupportedMediaType))
			})
		})

		When("the rendering service is unreachable", func() {
			It("should return bad gateway", func() {
				mockService.EXPECT().
					Upload(gomock.Any(), "ofertas.csv", gomock.Any()).
					Return(domain.Catalog{}, io.ErrUnexpectedEOF)

				router.ServeHTTP(recorder, newUploadRequest("ofertas.csv"))

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("no file part is present", func() {
			It("should return bad request", func() {
				var buffer bytes.Buffer
				writer := multipart.NewWriter(&buffer)
				Expect(writer.Close()).To(Succeed())

				request := httptest.NewRequest("POST", "/v1/catalog", &buffer)
				request.Header.Set("Content-Type", writer.FormDataContentType())
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("getCatalog", func() {
		When("a catalog is loaded", func() {
			It("should return it", func() {
				mockService.EXPECT().Current().Return(domain.Catalog{
					Filename:      "ofertas.csv",
					TotalProducts: 12,
				}, true)

				request := httptest.NewRequest("GET", "/v1/catalog", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})

		When("nothing was uploaded yet", func() {
			It("should return not found", func() {
				mockService.EXPECT().Current().Return(domain.Catalog{}, false)

				request := httptest.NewRequest("GET", "/v1/catalog", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("warmBarcodes", func() {
		It("should run synchronously and report the count", func() {
			mockService.EXPECT().Current().Return(domain.Catalog{Filename: "ofertas.csv"}, true)
			mockService.EXPECT().WarmBarcodes(gomock.Any()).Return(7)

			request := httptest.NewRequest("POST", "/v1/catalog/barcodes", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["generated"]).To(BeNumerically("==", 7))
		})
	})
})
