package httpapi

import (
	"errors"
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/geometry"
	"placard-server/internal/placard/httpapi/internal"
	"placard-server/internal/placard/usecases"
)

func NewEditorController(service usecases.EditorService) *EditorController {
	return &EditorController{
		service: service,
	}
}

var _ httpserver.Controller = &EditorController{}

// EditorController exposes the drag and resize gestures of the editing
// surface. A gesture is begin -> zero or more moves -> end; each move
// replies with the committed rectangle so the UI can echo it.
type EditorController struct {
	service usecases.EditorService
}

func (c *EditorController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/editor/{field}/drag", c.beginDrag())
	router.Handle("POST /v1/editor/{field}/drag/move", c.dragBy())
	router.Handle("POST /v1/editor/{field}/drag/end", c.endDrag())
	router.Handle("POST /v1/editor/{field}/resize", c.beginResize())
	router.Handle("POST /v1/editor/{field}/resize/move", c.resizeBy())
	router.Handle("POST /v1/editor/{field}/resize/end", c.endResize())
	router.Handle("GET /v1/editor/{field}/dimensions", c.dimensions())
}

func (c *EditorController) beginDrag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))
		if err := c.service.BeginDrag(key); err != nil {
			replyEditorError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *EditorController) dragBy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		var body internal.GestureMoveRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid move payload", http.StatusBadRequest)
			return
		}

		rect, err := c.service.DragBy(key, body.ToDelta())
		if err != nil {
			replyEditorError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.RectResponse{Rect: internal.FromRect(rect)})
	}
}

func (c *EditorController) endDrag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		rect, err := c.service.EndDrag(key)
		if err != nil {
			replyEditorError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.RectResponse{Rect: internal.FromRect(rect)})
	}
}

func (c *EditorController) beginResize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		var body internal.BeginResizeRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid resize payload", http.StatusBadRequest)
			return
		}

		edges := body.ToEdges()
		if edges == (geometry.Edges{}) {
			http.Error(w, "at least one edge is required", http.StatusBadRequest)
			return
		}

		if err := c.service.BeginResize(key, edges); err != nil {
			replyEditorError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *EditorController) resizeBy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		var body internal.GestureMoveRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid move payload", http.StatusBadRequest)
			return
		}

		rect, err := c.service.ResizeBy(key, body.ToDelta())
		if err != nil {
			replyEditorError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.RectResponse{Rect: internal.FromRect(rect)})
	}
}

func (c *EditorController) endResize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		rect, err := c.service.EndResize(key)
		if err != nil {
			replyEditorError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.RectResponse{Rect: internal.FromRect(rect)})
	}
}

func (c *EditorController) dimensions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.FieldKey(r.PathValue("field"))

		size, err := c.service.Dimensions(key)
		if err != nil {
			replyEditorError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DimensionsResponse{
			Width:  size.Width,
			Height: size.Height,
		})
	}
}

func replyEditorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecases.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, usecases.ErrNoActiveGesture):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "editor operation failed", http.StatusInternalServerError)
	}
}
