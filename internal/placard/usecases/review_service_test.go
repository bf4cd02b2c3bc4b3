package usecases_test

import (
	"context"
	"errors"

	"placard-server/internal/infra/async"
	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/usecases"
	mockusecases "placard-server/test/unit/doubles/placard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ReviewService", func() {
	var service *usecases.SimpleReviewService
	var mockCatalog *mockusecases.MockCatalogService
	var mockTemplates *mockusecases.MockTemplateService
	var mockRenderer *mockusecases.MockPlacardRenderer
	var broker *async.LocalBroker
	var ctrl *gomock.Controller
	var ctx context.Context

	catalog := domain.Catalog{
		Filename: "ofertas.csv",
		Products: []domain.Product{
			{Name: "Arroz"},
			{Name: "Feijao"},
			{Name: "Macarrao"},
		},
		TotalProducts: 3,
	}

	validVerdict := domain.PlacardVerdict{Valid: true, PreviewURL: "/static/previews/p.png"}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockCatalog = mockusecases.NewMockCatalogService(ctrl)
		mockTemplates = mockusecases.NewMockTemplateService(ctrl)
		mockRenderer = mockusecases.NewMockPlacardRenderer(ctrl)
		broker = async.NewLocalBroker()
		service = usecases.NewReviewService(mockCatalog, mockTemplates, mockRenderer, broker)
		ctx = context.Background()

		mockTemplates.EXPECT().Get().Return(domain.DefaultTemplateConfig()).AnyTimes()
	})

	AfterEach(func() {
		ctrl.Finish()
		broker.Stop()
	})

	expectValidate := func(index int, verdict domain.PlacardVerdict, err error) *gomock.Call {
		return mockRenderer.EXPECT().
			ValidatePlacard(gomock.Any(), "ofertas.csv", gomock.Any(), index).
			Return(verdict, err)
	}

	startReview := func() {
		mockCatalog.EXPECT().Current().Return(catalog, true)
		expectValidate(0, validVerdict, nil)
		step, err := service.Start(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.Phase).To(Equal(usecases.PhaseReviewing))
	}

	Context("Start", func() {
		When("no catalog is loaded", func() {
			It("should refuse to start", func() {
				mockCatalog.EXPECT().Current().Return(domain.Catalog{}, false)

				step, err := service.Start(ctx)

				Expect(err).To(MatchError(usecases.ErrNoProductsLoaded))
				Expect(step.Phase).To(Equal(usecases.PhaseIdle))
			})
		})

		When("products are loaded", func() {
			It("should render the first product", func() {
				mockCatalog.EXPECT().Current().Return(catalog, true)
				expectValidate(0, validVerdict, nil)

				step, err := service.Start(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(step.Phase).To(Equal(usecases.PhaseReviewing))
				Expect(step.Outcome).NotTo(BeNil())
				Expect(step.Outcome.Index).To(Equal(0))
				Expect(step.Outcome.Verdict.Valid).To(BeTrue())
			})

			It("should surface an invalid product as an outcome, not an error", func() {
				mockCatalog.EXPECT().Current().Return(catalog, true)
				expectValidate(0, domain.PlacardVerdict{
					Valid:    false,
					Problems: []string{"preco ausente"},
				}, nil)

				step, err := service.Start(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(step.Outcome.Verdict.Valid).To(BeFalse())
				Expect(step.Outcome.Verdict.Problems).To(ContainElement("preco ausente"))
			})
		})

		It("should discard the first render when cancelled mid-flight", func() {
			mockCatalog.EXPECT().Current().Return(catalog, true)
			mockRenderer.EXPECT().
				ValidatePlacard(gomock.Any(), "ofertas.csv", gomock.Any(), 0).
				DoAndReturn(func(context.Context, string, domain.TemplateConfig, int) (domain.PlacardVerdict, error) {
					Expect(service.Cancel()).To(Succeed())
					return validVerdict, nil
				})

			_, err := service.Start(ctx)

			Expect(err).To(MatchError(usecases.ErrStaleRender))
			Expect(service.Snapshot().Phase).To(Equal(usecases.PhaseIdle))
		})
	})

	Context("Confirm", func() {
		It("should refuse without an active run", func() {
			_, err := service.Confirm(ctx)
			Expect(err).To(MatchError(usecases.ErrReviewNotActive))
		})

		It("should advance to the next product", func() {
			startReview()
			expectValidate(1, validVerdict, nil)

			step, err := service.Confirm(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Outcome.Index).To(Equal(1))

			snapshot := service.Snapshot()
			Expect(snapshot.Confirmed).To(Equal([]int{0}))
			Expect(snapshot.CurrentIndex).To(Equal(1))
		})

		It("should assemble the document after the last product", func() {
			startReview()
			expectValidate(1, validVerdict, nil)
			expectValidate(2, validVerdict, nil)
			mockRenderer.EXPECT().
				AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{0, 1, 2}).
				Return(domain.AssembledDocument{
					DocumentURL: "/static/pdfs/placas.pdf",
					Report:      domain.Report{TotalProducts: 3, ValidCount: 3},
				}, nil)

			_, err := service.Confirm(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Confirm(ctx)
			Expect(err).NotTo(HaveOccurred())
			step, err := service.Confirm(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Phase).To(Equal(usecases.PhaseDone))
			Expect(step.Result).NotTo(BeNil())
			Expect(step.Result.Document.DocumentURL).To(Equal("/static/pdfs/placas.pdf"))
			Expect(step.Result.Inconsistent).To(BeFalse())
		})

		It("should flag an inconsistent assembler report", func() {
			startReview()
			expectValidate(1, validVerdict, nil)
			expectValidate(2, validVerdict, nil)
			mockRenderer.EXPECT().
				AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{0, 1, 2}).
				Return(domain.AssembledDocument{
					DocumentURL: "/static/pdfs/placas.pdf",
					Report:      domain.Report{TotalProducts: 3, ValidCount: 2, InvalidCount: 1},
				}, nil)

			service.Confirm(ctx)
			service.Confirm(ctx)
			step, err := service.Confirm(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Result.Inconsistent).To(BeTrue())
			Expect(step.Result.Document.Report.ValidCount).To(Equal(2))
		})
	})

	Context("Skip", func() {
		It("should record the reasons and advance", func() {
			startReview()
			expectValidate(1, validVerdict, nil)

			step, err := service.Skip(ctx, []string{"preco ausente"})

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Outcome.Index).To(Equal(1))

			snapshot := service.Snapshot()
			Expect(snapshot.Confirmed).To(BeEmpty())
			Expect(snapshot.Skipped).To(HaveLen(1))
			Expect(snapshot.Skipped[0].Index).To(Equal(0))
			Expect(snapshot.Skipped[0].Reasons).To(ContainElement("preco ausente"))
		})

		It("should reset to idle when everything was skipped", func() {
			startReview()
			expectValidate(1, validVerdict, nil)
			expectValidate(2, validVerdict, nil)

			service.Skip(ctx, []string{"a"})
			service.Skip(ctx, []string{"b"})
			step, err := service.Skip(ctx, []string{"c"})

			Expect(err).To(MatchError(usecases.ErrNothingToGenerate))
			Expect(step.Phase).To(Equal(usecases.PhaseIdle))
			Expect(service.Snapshot().Skipped).To(BeEmpty())
		})
	})

	Context("ConfirmAllRemaining", func() {
		It("should flush the rest of the batch in index order", func() {
			startReview()
			gomock.InOrder(
				expectValidate(1, validVerdict, nil),
				expectValidate(2, domain.PlacardVerdict{
					Valid:    false,
					Problems: []string{"codigo invalido"},
				}, nil),
				mockRenderer.EXPECT().
					AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{0, 1}).
					Return(domain.AssembledDocument{
						DocumentURL: "/static/pdfs/placas.pdf",
						Report:      domain.Report{TotalProducts: 3, ValidCount: 2, InvalidCount: 1},
					}, nil),
			)
			expectValidate(1, validVerdict, nil)

			_, err := service.Confirm(ctx)
			Expect(err).NotTo(HaveOccurred())

			step, err := service.ConfirmAllRemaining(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Phase).To(Equal(usecases.PhaseDone))

			snapshot := service.Snapshot()
			Expect(snapshot.Confirmed).To(Equal([]int{0, 1}))
			Expect(snapshot.Skipped).To(HaveLen(1))
			Expect(snapshot.Skipped[0].Index).To(Equal(2))
			Expect(snapshot.Skipped[0].Reasons).To(ContainElement("codigo invalido"))
		})

		It("should skip unreachable products instead of aborting", func() {
			startReview()
			gomock.InOrder(
				expectValidate(0, domain.PlacardVerdict{}, errors.New("connection refused")),
				expectValidate(1, validVerdict, nil),
				expectValidate(2, validVerdict, nil),
				mockRenderer.EXPECT().
					AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{1, 2}).
					Return(domain.AssembledDocument{
						DocumentURL: "/static/pdfs/placas.pdf",
						Report:      domain.Report{TotalProducts: 3, ValidCount: 2},
					}, nil),
			)

			step, err := service.ConfirmAllRemaining(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Phase).To(Equal(usecases.PhaseDone))

			snapshot := service.Snapshot()
			Expect(snapshot.Confirmed).To(Equal([]int{1, 2}))
			Expect(snapshot.Skipped).To(HaveLen(1))
		})
	})

	Context("Finalize", func() {
		It("should stay in finalizing after an assembly failure and allow a retry", func() {
			startReview()
			expectValidate(1, validVerdict, nil)
			expectValidate(2, validVerdict, nil)
			mockRenderer.EXPECT().
				AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{0, 1, 2}).
				Return(domain.AssembledDocument{}, errors.New("connection refused"))

			service.Confirm(ctx)
			service.Confirm(ctx)
			step, err := service.Confirm(ctx)

			Expect(err).To(HaveOccurred())
			Expect(step.Phase).To(Equal(usecases.PhaseFinalizing))

			mockRenderer.EXPECT().
				AssembleDocument(gomock.Any(), "ofertas.csv", gomock.Any(), []int{0, 1, 2}).
				Return(domain.AssembledDocument{
					DocumentURL: "/static/pdfs/placas.pdf",
					Report:      domain.Report{TotalProducts: 3, ValidCount: 3},
				}, nil)

			step, err = service.Finalize(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(step.Phase).To(Equal(usecases.PhaseDone))
		})

		It("should refuse outside the finalizing phase", func() {
			_, err := service.Finalize(ctx)
			Expect(err).To(MatchError(usecases.ErrReviewNotActive))
		})
	})

	Context("Cancel", func() {
		It("should refuse when idle", func() {
			Expect(service.Cancel()).To(MatchError(usecases.ErrReviewNotActive))
		})

		It("should discard the run state", func() {
			startReview()

			Expect(service.Cancel()).To(Succeed())

			snapshot := service.Snapshot()
			Expect(snapshot.Phase).To(Equal(usecases.PhaseIdle))
			Expect(snapshot.Total).To(BeZero())
			Expect(snapshot.Confirmed).To(BeEmpty())
		})
	})

	Context("event stream", func() {
		It("should publish progress on the review topic", func() {
			subscription, err := broker.Subscribe(usecases.ReviewEventsTopic)
			Expect(err).NotTo(HaveOccurred())

			events := make(chan string, 16)
			go func() {
				for msg := range subscription.Receiver {
					events <- msg.Event
				}
			}()

			startReview()
			expectValidate(1, validVerdict, nil)
			_, err = service.Confirm(ctx)
			Expect(err).NotTo(HaveOccurred())

			received := []string{}
			Eventually(func() []string {
				for {
					select {
					case event := <-events:
						received = append(received, event)
					default:
						return received
					}
				}
			}).Should(ContainElements(
				usecases.EventReviewStarted,
				usecases.EventPlacardRendered,
				usecases.EventProductConfirmed,
			))
		})
	})
})
