package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/httpapi/internal"
	"placard-server/internal/placard/usecases"
)

const (
	reviewStepErrMessage = "review step failed"
)

func NewReviewController(service usecases.ReviewService) *ReviewController {
	return &ReviewController{
		service: service,
	}
}

var _ httpserver.Controller = &ReviewController{}

// ReviewController exposes the confirmation workflow. Every transition
// replies with the step the run landed in, so the UI renders straight
// from the response.
type ReviewController struct {
	service usecases.ReviewService
}

func (c *ReviewController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/review", c.snapshot())
	router.Handle("POST /v1/review/start", c.start())
	router.Handle("POST /v1/review/confirm", c.confirm())
	router.Handle("POST /v1/review/skip", c.skip())
	router.Handle("POST /v1/review/confirm-remaining", c.confirmRemaining())
	router.Handle("POST /v1/review/finalize", c.finalize())
	router.Handle("DELETE /v1/review", c.cancel())
}

func (c *ReviewController) snapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := c.service.Snapshot()
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToReviewSnapshotResponse(snapshot))
	}
}

func (c *ReviewController) start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := c.service.Start(r.Context())
		c.replyStep(w, step, err)
	}
}

func (c *ReviewController) confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := c.service.Confirm(r.Context())
		c.replyStep(w, step, err)
	}
}

func (c *ReviewController) skip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SkipRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid skip payload", http.StatusBadRequest)
			return
		}

		step, err := c.service.Skip(r.Context(), body.Reasons)
		c.replyStep(w, step, err)
	}
}

func (c *ReviewController) confirmRemaining() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := c.service.ConfirmAllRemaining(r.Context())
		c.replyStep(w, step, err)
	}
}

func (c *ReviewController) finalize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := c.service.Finalize(r.Context())
		c.replyStep(w, step, err)
	}
}

func (c *ReviewController) cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.Cancel()
		if errors.Is(err, usecases.ErrReviewNotActive) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if err != nil {
			http.Error(w, reviewStepErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *ReviewController) replyStep(w http.ResponseWriter, step usecases.ReviewStep, err error) {
	switch {
	case err == nil:
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToReviewStepResponse(step))
	case errors.Is(err, usecases.ErrNoProductsLoaded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, usecases.ErrReviewNotActive):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, usecases.ErrStaleRender):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, usecases.ErrNothingToGenerate):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("review step", slog.String("error", err.Error()))
		http.Error(w, reviewStepErrMessage, http.StatusBadGateway)
	}
}
