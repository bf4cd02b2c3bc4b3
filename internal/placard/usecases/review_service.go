package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"placard-server/internal/infra/async"
	"placard-server/internal/placard/domain"
)

//go:generate mockgen -source=review_service.go -destination=../../../test/unit/doubles/placard/usecases/review_service_mock.go -package=usecases -mock_names=ReviewService=MockReviewService

var (
	ErrReviewNotActive = errors.New("review is not in the required phase")
	ErrStaleRender     = errors.New("render response for an abandoned index")
)

// ReviewPhase is the workflow state: Idle -> Reviewing -> Finalizing ->
// Done, with Cancel returning to Idle from Reviewing.
type ReviewPhase string

const (
	PhaseIdle       ReviewPhase = "idle"
	PhaseReviewing  ReviewPhase = "reviewing"
	PhaseFinalizing ReviewPhase = "finalizing"
	PhaseDone       ReviewPhase = "done"
)

const ReviewEventsTopic async.BrokerTopicName = "review-events"

const (
	EventReviewStarted    = "review_started"
	EventPlacardRendered  = "placard_rendered"
	EventProductConfirmed = "product_confirmed"
	EventProductSkipped   = "product_skipped"
	EventReviewFinalized  = "review_finalized"
	EventReviewCancelled  = "review_cancelled"
)

const (
	reasonServiceUnavailable = "rendering service unavailable"
	reasonUnknownProblem     = "unknown problem"
)

// ReviewEvent is the progress notification published on the internal
// broker while a review run advances; the websocket controller streams
// these to the UI.
type ReviewEvent struct {
	Index       int                    `json:"index"`
	Total       int                    `json:"total"`
	Verdict     *domain.PlacardVerdict `json:"verdict,omitempty"`
	Reasons     []string               `json:"reasons,omitempty"`
	DocumentURL string                 `json:"document_url,omitempty"`
}

// RenderOutcome is the renderer's verdict for the product under review.
type RenderOutcome struct {
	Index   int
	Verdict domain.PlacardVerdict
}

// ReviewResult carries the assembled document once a run completes.
// Inconsistent is set when the assembler's reported valid count does not
// match the confirmed list that was sent (trusted, but flagged).
type ReviewResult struct {
	Document     domain.AssembledDocument
	Inconsistent bool
}

// ReviewStep is what the caller sees after each transition: the phase it
// landed in plus the render outcome (while reviewing) or the final result
// (once done).
type ReviewStep struct {
	Phase   ReviewPhase
	Outcome *RenderOutcome
	Result  *ReviewResult
}

type ReviewSnapshot struct {
	Phase        ReviewPhase
	CurrentIndex int
	Total        int
	Confirmed    []int
	Skipped      []domain.SkippedProduct
}

// ReviewService drives the one-by-one confirmation of every loaded
// product. It exclusively owns the run's ConfirmationState; it reads the
// catalog and template but never mutates them. Validity never blocks
// Confirm here; disabling the confirm action for invalid products is the
// presentation layer's call.
type ReviewService interface {
	Start(ctx context.Context) (ReviewStep, error)
	Confirm(ctx context.Context) (ReviewStep, error)
	Skip(ctx context.Context, reasons []string) (ReviewStep, error)
	ConfirmAllRemaining(ctx context.Context) (ReviewStep, error)
	Finalize(ctx context.Context) (ReviewStep, error)
	Cancel() error
	Snapshot() ReviewSnapshot
}

func NewReviewService(
	catalog CatalogService,
	templates TemplateService,
	renderer PlacardRenderer,
	broker async.InternalBroker,
) *SimpleReviewService {
	return &SimpleReviewService{
		catalog:   catalog,
		templates: templates,
		renderer:  renderer,
		broker:    broker,
		phase:     PhaseIdle,
	}
}

var _ ReviewService = &SimpleReviewService{}

type SimpleReviewService struct {
	mu        sync.Mutex
	catalog   CatalogService
	templates TemplateService
	renderer  PlacardRenderer
	broker    async.InternalBroker

	phase      ReviewPhase
	state      domain.ConfirmationState
	products   []domain.Product
	filename   string
	generation uint64
}

// Start begins a fresh run over the loaded catalog and renders index 0.
func (s *SimpleReviewService) Start(ctx context.Context) (ReviewStep, error) {
	catalog, ok := s.catalog.Current()
	if !ok || len(catalog.Products) == 0 {
		return ReviewStep{Phase: PhaseIdle}, ErrNoProductsLoaded
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.phase = PhaseReviewing
	s.state = domain.ConfirmationState{}
	s.products = catalog.Products
	s.filename = catalog.Filename
	s.mu.Unlock()

	slog.Info("review started",
		slog.String("filename", catalog.Filename),
		slog.Int("total", len(catalog.Products)))
	s.publish(ctx, EventReviewStarted, ReviewEvent{Total: len(catalog.Products)})

	return s.renderStep(ctx, generation)
}

// Confirm accepts the current product and advances; reaching the end of
// the batch moves into Finalizing and triggers document assembly.
func (s *SimpleReviewService) Confirm(ctx context.Context) (ReviewStep, error) {
	s.mu.Lock()
	if s.phase != PhaseReviewing {
		s.mu.Unlock()
		return ReviewStep{Phase: s.phase}, ErrReviewNotActive
	}

	index := s.state.CurrentIndex
	s.state.Confirmed = append(s.state.Confirmed, index)
	s.state.CurrentIndex++
	generation := s.generation
	finished := s.state.CurrentIndex == len(s.products)
	if finished {
		s.phase = PhaseFinalizing
	}
	total := len(s.products)
	s.mu.Unlock()

	s.publish(ctx, EventProductConfirmed, ReviewEvent{Index: index, Total: total})

	if finished {
		return s.finalize(ctx)
	}
	return s.renderStep(ctx, generation)
}

// Skip records the current product with the given reasons and advances
// exactly like Confirm.
func (s *SimpleReviewService) Skip(ctx context.Context, reasons []string) (ReviewStep, error) {
	s.mu.Lock()
	if s.phase != PhaseReviewing {
		s.mu.Unlock()
		return ReviewStep{Phase: s.phase}, ErrReviewNotActive
	}

	index := s.state.CurrentIndex
	s.state.Skipped = append(s.state.Skipped, domain.SkippedProduct{Index: index, Reasons: reasons})
	s.state.CurrentIndex++
	generation := s.generation
	finished := s.state.CurrentIndex == len(s.products)
	if finished {
		s.phase = PhaseFinalizing
	}
	total := len(s.products)
	s.mu.Unlock()

	s.publish(ctx, EventProductSkipped, ReviewEvent{Index: index, Total: total, Reasons: reasons})

	if finished {
		return s.finalize(ctx)
	}
	return s.renderStep(ctx, generation)
}

// ConfirmAllRemaining fast-paths the rest of the batch without per-item
// review: each remaining index is validated sequentially, awaited to
// completion before the next, so the confirmed/skipped ordering matches
// index order. Valid products are confirmed; invalid or unreachable ones
// are skipped with the renderer's problems or a generic reason.
func (s *SimpleReviewService) ConfirmAllRemaining(ctx context.Context) (ReviewStep, error) {
	s.mu.Lock()
	if s.phase != PhaseReviewing {
		s.mu.Unlock()
		return ReviewStep{Phase: s.phase}, ErrReviewNotActive
	}
	generation := s.generation
	filename := s.filename
	total := len(s.products)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.generation != generation || s.phase != PhaseReviewing {
			s.mu.Unlock()
			return ReviewStep{Phase: s.phase}, ErrStaleRender
		}
		if s.state.CurrentIndex >= total {
			s.phase = PhaseFinalizing
			s.mu.Unlock()
			break
		}
		index := s.state.CurrentIndex
		s.mu.Unlock()

		verdict, err := s.renderer.ValidatePlacard(ctx, filename, s.templates.Get(), index)

		s.mu.Lock()
		if s.generation != generation || s.phase != PhaseReviewing || s.state.CurrentIndex != index {
			s.mu.Unlock()
			return ReviewStep{Phase: s.phase}, ErrStaleRender
		}
		switch {
		case err != nil:
			slog.Warn("validating placard during flush",
				slog.Int("index", index), slog.String("error", err.Error()))
			s.state.Skipped = append(s.state.Skipped,
				domain.SkippedProduct{Index: index, Reasons: []string{reasonServiceUnavailable}})
		case verdict.Valid:
			s.state.Confirmed = append(s.state.Confirmed, index)
		default:
			reasons := verdict.Problems
			if len(reasons) == 0 {
				reasons = []string{reasonUnknownProblem}
			}
			s.state.Skipped = append(s.state.Skipped,
				domain.SkippedProduct{Index: index, Reasons: reasons})
		}
		s.state.CurrentIndex++
		s.mu.Unlock()
	}

	return s.finalize(ctx)
}

// Finalize retries document assembly after a failed attempt left the run
// in Finalizing.
func (s *SimpleReviewService) Finalize(ctx context.Context) (ReviewStep, error) {
	s.mu.Lock()
	if s.phase != PhaseFinalizing {
		s.mu.Unlock()
		return ReviewStep{Phase: s.phase}, ErrReviewNotActive
	}
	s.mu.Unlock()

	return s.finalize(ctx)
}

// Cancel discards the run's state and returns to Idle. In-flight render
// responses are invalidated and will be dropped on arrival.
func (s *SimpleReviewService) Cancel() error {
	s.mu.Lock()
	if s.phase == PhaseIdle {
		s.mu.Unlock()
		return ErrReviewNotActive
	}
	s.generation++
	s.phase = PhaseIdle
	s.state = domain.ConfirmationState{}
	s.products = nil
	s.filename = ""
	s.mu.Unlock()

	slog.Info("review cancelled")
	s.publish(context.Background(), EventReviewCancelled, ReviewEvent{})
	return nil
}

func (s *SimpleReviewService) Snapshot() ReviewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed := make([]int, len(s.state.Confirmed))
	copy(confirmed, s.state.Confirmed)
	skipped := make([]domain.SkippedProduct, len(s.state.Skipped))
	copy(skipped, s.state.Skipped)

	return ReviewSnapshot{
		Phase:        s.phase,
		CurrentIndex: s.state.CurrentIndex,
		Total:        len(s.products),
		Confirmed:    confirmed,
		Skipped:      skipped,
	}
}

// renderStep validates the product under review. The request is tagged
// with the generation and index it was issued for; if the run advanced or
// was cancelled while the call was in flight, the response is discarded
// and ConfirmationState stays untouched.
func (s *SimpleReviewService) renderStep(ctx context.Context, generation uint64) (ReviewStep, error) {
	s.mu.Lock()
	if s.generation != generation || s.phase != PhaseReviewing {
		phase := s.phase
		s.mu.Unlock()
		return ReviewStep{Phase: phase}, ErrStaleRender
	}
	index := s.state.CurrentIndex
	filename := s.filename
	total := len(s.products)
	s.mu.Unlock()

	verdict, err := s.renderer.ValidatePlacard(ctx, filename, s.templates.Get(), index)

	s.mu.Lock()
	stale := s.generation != generation || s.phase != PhaseReviewing || s.state.CurrentIndex != index
	phase := s.phase
	s.mu.Unlock()

	if stale {
		slog.Debug("discarding stale render response", slog.Int("index", index))
		return ReviewStep{Phase: phase}, ErrStaleRender
	}
	if err != nil {
		slog.Error("validating placard", slog.Int("index", index), slog.String("error", err.Error()))
		return ReviewStep{Phase: phase}, fmt.Errorf("validating placard: %w", err)
	}

	s.publish(ctx, EventPlacardRendered, ReviewEvent{Index: index, Total: total, Verdict: &verdict})
	return ReviewStep{
		Phase:   PhaseReviewing,
		Outcome: &RenderOutcome{Index: index, Verdict: verdict},
	}, nil
}

// finalize assembles the final document from the confirmed list. An empty
// list never reaches the assembler: the run resets to Idle and the caller
// gets ErrNothingToGenerate. Assembly failure keeps the run in Finalizing
// so the caller can retry or cancel.
func (s *SimpleReviewService) finalize(ctx context.Context) (ReviewStep, error) {
	s.mu.Lock()
	if s.phase != PhaseFinalizing {
		phase := s.phase
		s.mu.Unlock()
		return ReviewStep{Phase: phase}, ErrReviewNotActive
	}

	if len(s.state.Confirmed) == 0 {
		s.generation++
		s.phase = PhaseIdle
		s.state = domain.ConfirmationState{}
		s.mu.Unlock()
		slog.Warn("nothing to generate, review reset")
		return ReviewStep{Phase: PhaseIdle}, ErrNothingToGenerate
	}

	confirmed := make([]int, len(s.state.Confirmed))
	copy(confirmed, s.state.Confirmed)
	filename := s.filename
	s.mu.Unlock()

	document, err := s.renderer.AssembleDocument(ctx, filename, s.templates.Get(), confirmed)
	if err != nil {
		slog.Error("assembling document", slog.String("error", err.Error()))
		return ReviewStep{Phase: PhaseFinalizing}, fmt.Errorf("assembling document: %w", err)
	}

	inconsistent := document.Report.ValidCount != len(confirmed)
	if inconsistent {
		slog.Warn("assembler report inconsistency",
			slog.Int("reported_valid", document.Report.ValidCount),
			slog.Int("confirmed", len(confirmed)))
	}

	s.mu.Lock()
	s.phase = PhaseDone
	s.mu.Unlock()

	slog.Info("review finalized",
		slog.String("document_url", document.DocumentURL),
		slog.Int("confirmed", len(confirmed)))
	s.publish(ctx, EventReviewFinalized, ReviewEvent{
		Total:       document.Report.TotalProducts,
		DocumentURL: document.DocumentURL,
	})

	return ReviewStep{
		Phase:  PhaseDone,
		Result: &ReviewResult{Document: document, Inconsistent: inconsistent},
	}, nil
}

func (s *SimpleReviewService) publish(ctx context.Context, event string, payload ReviewEvent) {
	err := s.broker.Publish(ctx, ReviewEventsTopic, async.BrokerMessage{Event: event, Value: payload})
	if err != nil {
		slog.Debug("publishing review event", slog.String("event", event), slog.String("error", err.Error()))
	}
}
