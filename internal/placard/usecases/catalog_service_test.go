package usecases_test

import (
	"context"
	"errors"
	"strings"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CatalogService", func() {
	var service *usecases.SimpleCatalogService
	var mockRenderer *mockusecases.MockPlacardRenderer
	var ctrl *gomock.Controller
	var ctx context.Context

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRenderer = mockusecases.NewMockPlacardRenderer(ctrl)
		service = usecases.NewCatalogService(mockRenderer)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Upload", func() {
		When("the file is an offer sheet", func() {
			It("should keep the parsed catalog for the session", func() {
				parsed := domain.Catalog{
					Filename: "ofertas.xlsx",
					Products: []domain.Product{
						{Name: "Arroz 5kg", Price: "R$ 19,90", Barcode: "7891234567895"},
						{Name: "Feijao 1kg", Price: "R$ 7,50"},
					},
					TotalProducts: 2,
					TotalProblems: 1,
				}
				mockRenderer.EXPECT().
					UploadCatalog(gomock.Any(), "ofertas.xlsx", gomock.Any()).
					Return(parsed, nil)

				catalog, err := service.Upload(ctx, "ofertas.xlsx", strings.NewReader("sheet"))

				Expect(err).NotTo(HaveOccurred())
				Expect(catalog.TotalProducts).To(Equal(2))

				current, ok := service.Current()
				Expect(ok).To(BeTrue())
				Expect(current.Filename).To(Equal("ofertas.xlsx"))
				Expect(service.Products()).To(HaveLen(2))
			})
		})

		When("the extension is not supported", func() {
			It("should reject before any network call", func() {
				_, err := service.Upload(ctx, "ofertas.pdf", strings.NewReader("junk"))

				Expect(err).To(MatchError(usecases.ErrUnsupportedFileType))
				_, ok := service.Current()
				Expect(ok).To(BeFalse())
			})
		})

		When("the rendering service fails", func() {
			It("should keep the previous catalog", func() {
				mockRenderer.EXPECT().
					UploadCatalog(gomock.Any(), "ofertas.csv", gomock.Any()).
					Return(domain.Catalog{Filename: "ofertas.csv", TotalProducts: 1}, nil)
				_, err := service.Upload(ctx, "ofertas.csv", strings.NewReader("sheet"))
				Expect(err).NotTo(HaveOccurred())

				mockRenderer.EXPECT().
					UploadCatalog(gomock.Any(), "novas.csv", gomock.Any()).
					Return(domain.Catalog{}, errors.New("connection refused"))
				_, err = service.Upload(ctx, "novas.csv", strings.NewReader("sheet"))
				Expect(err).To(HaveOccurred())

				current, ok := service.Current()
				Expect(ok).To(BeTrue())
				Expect(current.Filename).To(Equal("ofertas.csv"))
			})
		})
	})

	Context("WarmBarcodes", func() {
		BeforeEach(func() {
			mockRenderer.EXPECT().
				UploadCatalog(gomock.Any(), "ofertas.csv", gomock.Any()).
				Return(domain.Catalog{
					Filename: "ofertas.csv",
					Products: []domain.Product{
						{Name: "Arroz", Barcode: "7891234567895"},
						{Name: "Feijao", Barcode: "123"},
						{Name: "Macarrao", Barcode: "7891000100103"},
						{Name: "Oleo", Barcode: "78910001001AB"},
					},
					TotalProducts: 4,
				}, nil)
			_, err := service.Upload(ctx, "ofertas.csv", strings.NewReader("sheet"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should generate only well-formed codes in upload order", func() {
			gomock.InOrder(
				mockRenderer.EXPECT().GenerateBarcode(gomock.Any(), "7891234567895").Return(nil),
				mockRenderer.EXPECT().GenerateBarcode(gomock.Any(), "7891000100103").Return(nil),
			)

			Expect(service.WarmBarcodes(ctx)).To(Equal(2))
		})

		It("should keep going past per-code failures", func() {
			gomock.InOrder(
				mockRenderer.EXPECT().
					GenerateBarcode(gomock.Any(), "7891234567895").
					Return(errors.New("timeout")),
				mockRenderer.EXPECT().GenerateBarcode(gomock.Any(), "7891000100103").Return(nil),
			)

			Expect(service.WarmBarcodes(ctx)).To(Equal(1))
		})
	})
})
