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
	dispatchActionErrMessage = "failed to apply template action"
)

func NewTemplateController(service usecases.TemplateService) *TemplateController {
	return &TemplateController{
		service: service,
	}
}

var _ httpserver.Controller = &TemplateController{}

type TemplateController struct {
	service usecases.TemplateService
}

func (c *TemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/template", c.getTemplate())
	router.Handle("POST /v1/template/actions", c.dispatchAction())
}

func (c *TemplateController) getTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config := c.service.Get()
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(config))
	}
}

func (c *TemplateController) dispatchAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ActionRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, dispatchActionErrMessage, http.StatusBadRequest)
			return
		}

		action, err := body.ToAction()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		next, err := c.service.Dispatch(action)
		if errors.Is(err, usecases.ErrUnknownField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("dispatching action", slog.String("type", body.Type), slog.String("error", err.Error()))
			http.Error(w, dispatchActionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(next))
	}
}
