package usecases_test

import (
	"context"
	"errors"
	"time"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/geometry"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TemplateService", func() {
	var service *usecases.SimpleTemplateService
	var mockProfiles *mockusecases.MockProfileRepository
	var ctrl *gomock.Controller
	var ctx context.Context

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockProfiles = mockusecases.NewMockProfileRepository(ctrl)
		service = usecases.NewTemplateService(mockProfiles)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Get", func() {
		It("should start with the built-in defaults", func() {
			config := service.Get()

			Expect(config.PageSize).To(Equal(domain.PageA4))
			Expect(config.Background).To(Equal(domain.DefaultBackground))
			Expect(config.ShowBorders).To(BeTrue())
			Expect(config.Fields).To(HaveLen(4))
		})

		It("should never alias the stored field map", func() {
			config := service.Get()
			field := config.Fields[domain.FieldName]
			field.Visible = false
			config.Fields[domain.FieldName] = field

			current, _ := service.Get().Field(domain.FieldName)
			Expect(current.Visible).To(BeTrue())
		})
	})

	Context("Dispatch", func() {
		It("should apply a rect update and keep it", func() {
			next, err := service.Dispatch(usecases.SetFieldRect{
				Key:  domain.FieldPrice,
				Rect: domain.Rect{X: 40, Y: 120, Width: 200, Height: 50},
			})

			Expect(err).NotTo(HaveOccurred())
			field, _ := next.Field(domain.FieldPrice)
			Expect(field.Rect.X).To(Equal(40.0))

			stored, _ := service.Get().Field(domain.FieldPrice)
			Expect(stored.Rect).To(Equal(field.Rect))
		})

		It("should clamp rects below the minimum size", func() {
			next, err := service.Dispatch(usecases.SetFieldRect{
				Key:  domain.FieldPrice,
				Rect: domain.Rect{X: 40, Y: 120, Width: 10, Height: 5},
			})

			Expect(err).NotTo(HaveOccurred())
			field, _ := next.Field(domain.FieldPrice)
			Expect(field.Rect.Width).To(Equal(float64(geometry.MinWidth)))
			Expect(field.Rect.Height).To(Equal(float64(geometry.MinHeight)))
		})

		It("should reject an unknown field and keep the config untouched", func() {
			before := service.Get()

			_, err := service.Dispatch(usecases.SetFieldVisible{
				Key:     domain.FieldKey("discount"),
				Visible: false,
			})

			Expect(err).To(MatchError(usecases.ErrUnknownField))
			Expect(service.Get()).To(Equal(before))
		})

		It("should ignore an unknown page size", func() {
			next, err := service.Dispatch(usecases.SetPageSize{Size: domain.PageSize("letter")})

			Expect(err).NotTo(HaveOccurred())
			Expect(next.PageSize).To(Equal(domain.PageA4))
		})

		It("should ignore a non-positive font size", func() {
			next, err := service.Dispatch(usecases.SetFieldFontSize{Key: domain.FieldName, Size: 0})

			Expect(err).NotTo(HaveOccurred())
			field, _ := next.Field(domain.FieldName)
			Expect(field.FontSize).To(Equal(20))
		})

		It("should toggle barcode image rendering with its size", func() {
			next, err := service.Dispatch(usecases.SetCodeImage{
				Enabled: true,
				Size:    domain.Size{Width: 150, Height: 40},
			})

			Expect(err).NotTo(HaveOccurred())
			field, _ := next.Field(domain.FieldCode)
			Expect(field.RenderAsImage).To(BeTrue())
			Expect(field.ImageSize).To(Equal(domain.Size{Width: 150, Height: 40}))
		})
	})

	Context("SaveProfile", func() {
		It("should trim the name and persist the current config", func() {
			saved := domain.Profile{Name: "verao-2025", CreatedAt: time.Now()}
			mockProfiles.EXPECT().
				Save(gomock.Any(), "verao-2025", gomock.Any()).
				Return(saved, nil)

			profile, err := service.SaveProfile(ctx, "  verao-2025  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Name).To(Equal("verao-2025"))
		})

		It("should reject a blank name without touching the repository", func() {
			_, err := service.SaveProfile(ctx, "   ")

			Expect(err).To(MatchError(usecases.ErrEmptyProfileName))
		})
	})

	Context("LoadProfile", func() {
		It("should replace the current config wholesale", func() {
			stored := domain.DefaultTemplateConfig()
			stored.PageSize = domain.PageA5
			stored.Background = "natal.png"
			mockProfiles.EXPECT().
				Get(gomock.Any(), "natal").
				Return(domain.Profile{Name: "natal", Config: stored}, nil)

			config, err := service.LoadProfile(ctx, "natal")

			Expect(err).NotTo(HaveOccurred())
			Expect(config.PageSize).To(Equal(domain.PageA5))
			Expect(service.Get().Background).To(Equal("natal.png"))
		})

		It("should pass a missing profile through as not found", func() {
			mockProfiles.EXPECT().
				Get(gomock.Any(), "missing").
				Return(domain.Profile{}, usecases.ErrProfileNotFound)

			_, err := service.LoadProfile(ctx, "missing")

			Expect(err).To(MatchError(usecases.ErrProfileNotFound))
		})

		It("should keep the current config on a repository failure", func() {
			before := service.Get()
			mockProfiles.EXPECT().
				Get(gomock.Any(), "natal").
				Return(domain.Profile{}, errors.New("connection refused"))

			_, err := service.LoadProfile(ctx, "natal")

			Expect(err).To(HaveOccurred())
			Expect(service.Get()).To(Equal(before))
		})
	})

	Context("DeleteProfile", func() {
		It("should pass a missing profile through as not found", func() {
			mockProfiles.EXPECT().
				Delete(gomock.Any(), "missing").
				Return(usecases.ErrProfileNotFound)

			err := service.DeleteProfile(ctx, "missing")

			Expect(err).To(MatchError(usecases.ErrProfileNotFound))
		})
	})
})
