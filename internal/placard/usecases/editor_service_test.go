package usecases_test

import (
	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/geometry"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EditorService", func() {
	var service *usecases.SimpleEditorService
	var templates *usecases.SimpleTemplateService
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		templates = usecases.NewTemplateService(mockusecases.NewMockProfileRepository(ctrl))
		service = usecases.NewEditorService(templates)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("drag", func() {
		It("should accumulate moves into the stored rectangle", func() {
			Expect(service.BeginDrag(domain.FieldPrice)).To(Succeed())

			rect, err := service.DragBy(domain.FieldPrice, geometry.Delta{DX: 5, DY: -3})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.X).To(Equal(25.0))
			Expect(rect.Y).To(Equal(97.0))

			rect, err = service.DragBy(domain.FieldPrice, geometry.Delta{DX: 10, DY: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.X).To(Equal(35.0))
			Expect(rect.Y).To(Equal(97.0))

			stored, _ := templates.Get().Field(domain.FieldPrice)
			Expect(stored.Rect.X).To(Equal(35.0))
		})

		It("should clamp the rectangle back onto the canvas on release", func() {
			Expect(service.BeginDrag(domain.FieldPrice)).To(Succeed())

			// drag far past the A4 right edge
			rect, err := service.DragBy(domain.FieldPrice, geometry.Delta{DX: 2000, DY: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.X).To(Equal(2020.0))

			rect, err = service.EndDrag(domain.FieldPrice)
			Expect(err).NotTo(HaveOccurred())

			canvas := domain.PageA4.Dimensions()
			Expect(rect.X).To(Equal(canvas.Width - rect.Width))
		})

		It("should reject a move without an open gesture", func() {
			_, err := service.DragBy(domain.FieldPrice, geometry.Delta{DX: 1, DY: 1})
			Expect(err).To(MatchError(usecases.ErrNoActiveGesture))
		})

		It("should reject an unknown field on begin", func() {
			err := service.BeginDrag(domain.FieldKey("discount"))
			Expect(err).To(MatchError(usecases.ErrUnknownField))
		})

		It("should close the gesture on release", func() {
			Expect(service.BeginDrag(domain.FieldName)).To(Succeed())
			_, err := service.EndDrag(domain.FieldName)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.DragBy(domain.FieldName, geometry.Delta{DX: 1, DY: 1})
			Expect(err).To(MatchError(usecases.ErrNoActiveGesture))
		})
	})

	Context("resize", func() {
		It("should grow along the active edges", func() {
			Expect(service.BeginResize(domain.FieldCode, geometry.Edges{Right: true, Bottom: true})).To(Succeed())

			rect, err := service.ResizeBy(domain.FieldCode, geometry.Delta{DX: 30, DY: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.Width).To(Equal(230.0))
			Expect(rect.Height).To(Equal(50.0))
			Expect(rect.X).To(Equal(20.0))
		})

		It("should keep the opposite edge fixed when resizing from the left", func() {
			Expect(service.BeginResize(domain.FieldName, geometry.Edges{Left: true})).To(Succeed())

			rect, err := service.ResizeBy(domain.FieldName, geometry.Delta{DX: 50, DY: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.X).To(Equal(70.0))
			Expect(rect.Width).To(Equal(250.0))
			Expect(rect.X + rect.Width).To(Equal(320.0))
		})

		It("should never shrink below the minimum size", func() {
			Expect(service.BeginResize(domain.FieldPrice, geometry.Edges{Right: true, Bottom: true})).To(Succeed())

			rect, err := service.ResizeBy(domain.FieldPrice, geometry.Delta{DX: -500, DY: -500})
			Expect(err).NotTo(HaveOccurred())
			Expect(rect.Width).To(Equal(float64(geometry.MinWidth)))
			Expect(rect.Height).To(Equal(float64(geometry.MinHeight)))
		})

		It("should not cross gesture kinds", func() {
			Expect(service.BeginDrag(domain.FieldPrice)).To(Succeed())

			_, err := service.ResizeBy(domain.FieldPrice, geometry.Delta{DX: 1, DY: 0})
			Expect(err).To(MatchError(usecases.ErrNoActiveGesture))
		})
	})

	Context("Dimensions", func() {
		It("should report the stored width and height", func() {
			size, err := service.Dimensions(domain.FieldDate)
			Expect(err).NotTo(HaveOccurred())
			Expect(size).To(Equal(domain.Size{Width: 250, Height: 40}))
		})

		It("should reject an unknown field", func() {
			_, err := service.Dimensions(domain.FieldKey("discount"))
			Expect(err).To(MatchError(usecases.ErrUnknownField))
		})
	})
})
