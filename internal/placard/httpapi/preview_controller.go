package httpapi

import (
	"errors"
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/httpapi/internal"
	"placard-server/internal/placard/usecases"
)

const (
	renderPreviewErrMessage = "failed to render preview"
)

func NewPreviewController(service usecases.PreviewService) *PreviewController {
	return &PreviewController{
		service: service,
	}
}

var _ httpserver.Controller = &PreviewController{}

// PreviewController drives the preview cursor. Navigation saturates at
// the ends of the catalog; every navigation reply carries the landed
// index so the UI can follow.
type PreviewController struct {
	service usecases.PreviewService
}

func (c *PreviewController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/preview/cursor", c.getCursor())
	router.Handle("POST /v1/preview/next", c.next())
	router.Handle("POST /v1/preview/previous", c.previous())
	router.Handle("POST /v1/preview/select", c.selectIndex())
	router.Handle("POST /v1/preview/render", c.render())
}

func (c *PreviewController) getCursor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.CursorResponse{
			Index: c.service.Current(),
			Total: c.service.Total(),
		})
	}
}

func (c *PreviewController) next() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.CursorResponse{
			Index: c.service.Next(),
			Total: c.service.Total(),
		})
	}
}

func (c *PreviewController) previous() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.CursorResponse{
			Index: c.service.Previous(),
			Total: c.service.Total(),
		})
	}
}

func (c *PreviewController) selectIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SelectRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid select payload", http.StatusBadRequest)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.CursorResponse{
			Index: c.service.Select(body.Index),
			Total: c.service.Total(),
		})
	}
}

func (c *PreviewController) render() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previewURL, err := c.service.RenderCurrent(r.Context())
		if errors.Is(err, usecases.ErrNoCatalogLoaded) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if err != nil {
			http.Error(w, renderPreviewErrMessage, http.StatusBadGateway)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.PreviewResponse{PreviewURL: previewURL})
	}
}
