package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/httpapi/internal"
	"placard-server/internal/placard/usecases"
)

const (
	uploadCatalogErrMessage   = "failed to upload catalog"
	noCatalogLoadedErrMessage = "no catalog loaded"

	// 16MB, enough for any realistic offer sheet
	maxUploadMemory = 16 << 20
)

func NewCatalogController(service usecases.CatalogService) *CatalogController {
	return &CatalogController{
		service: service,
	}
}

var _ httpserver.Controller = &CatalogController{}

type CatalogController struct {
	service usecases.CatalogService
}

func (c *CatalogController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/catalog", c.uploadCatalog())
	router.Handle("GET /v1/catalog", c.getCatalog())
	router.Handle("POST /v1/catalog/barcodes", c.warmBarcodes())
}

// uploadCatalog proxies the offer sheet to the rendering service and
// kicks off barcode warm-up in the background, without delaying the
// reply.
func (c *CatalogController) uploadCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			http.Error(w, uploadCatalogErrMessage, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		catalog, err := c.service.Upload(r.Context(), header.Filename, file)
		if errors.Is(err, usecases.ErrUnsupportedFileType) {
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		}
		if err != nil {
			slog.Error("uploading catalog", slog.String("filename", header.Filename), slog.String("error", err.Error()))
			http.Error(w, uploadCatalogErrMessage, http.StatusBadGateway)
			return
		}

		go c.service.WarmBarcodes(context.WithoutCancel(r.Context()))

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCatalogResponse(catalog))
	}
}

func (c *CatalogController) getCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, ok := c.service.Current()
		if !ok {
			http.Error(w, noCatalogLoadedErrMessage, http.StatusNotFound)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCatalogResponse(catalog))
	}
}

// warmBarcodes re-runs barcode generation synchronously and reports how
// many codes were produced.
func (c *CatalogController) warmBarcodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := c.service.Current(); !ok {
			http.Error(w, noCatalogLoadedErrMessage, http.StatusNotFound)
			return
		}

		generated := c.service.WarmBarcodes(r.Context())
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.BarcodeWarmupResponse{Generated: generated})
	}
}
