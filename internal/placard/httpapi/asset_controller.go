package httpapi

import (
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/usecases"
)

const (
	listBackgroundsErrMessage = "failed to list backgrounds"
	listFontsErrMessage       = "failed to list fonts"
)

func NewAssetController(service usecases.AssetCatalogService) *AssetController {
	return &AssetController{
		service: service,
	}
}

var _ httpserver.Controller = &AssetController{}

type AssetController struct {
	service usecases.AssetCatalogService
}

func (c *AssetController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/backgrounds", c.listBackgrounds())
	router.Handle("GET /v1/fonts", c.listFonts())
}

func (c *AssetController) listBackgrounds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backgrounds, err := c.service.Backgrounds(r.Context())
		if err != nil {
			http.Error(w, listBackgroundsErrMessage, http.StatusBadGateway)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string][]string{"backgrounds": backgrounds})
	}
}

func (c *AssetController) listFonts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fonts, err := c.service.Fonts(r.Context())
		if err != nil {
			http.Error(w, listFontsErrMessage, http.StatusBadGateway)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string][]string{"fonts": fonts})
	}
}
