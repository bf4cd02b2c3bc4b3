package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/usecases"
	"placard-server/internal/renderer/internal"
)

const defaultTimeout = 30 * time.Second

// Client talks to the external rendering service. It is the single
// outbound adapter of the server: profiles, previews, validation,
// document assembly, barcodes and asset listings all go through it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ usecases.ProfileRepository = (*Client)(nil)
var _ usecases.PlacardRenderer = (*Client)(nil)
var _ usecases.AssetRepository = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FindAll(ctx context.Context) ([]domain.Profile, error) {
	var response internal.ProfileListResponse
	if err := c.getJSON(ctx, "listing profiles", "/api/perfis", &response); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(response.Profiles))
	for _, profile := range response.Profiles {
		profiles = append(profiles, profile.ToDomain())
	}
	return profiles, nil
}

func (c *Client) Get(ctx context.Context, name string) (domain.Profile, error) {
	var response internal.Profile
	err := c.getJSON(ctx, "getting profile", "/api/perfis/"+url.PathEscape(name), &response)
	if isNotFound(err) {
		return domain.Profile{}, usecases.ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return response.ToDomain(), nil
}

func (c *Client) Save(ctx context.Context, name string, config domain.TemplateConfig) (domain.Profile, error) {
	request := internal.SaveProfileRequest{
		Name:   name,
		Config: internal.FromTemplateConfig(config),
	}

	var response internal.Profile
	if err := c.postJSON(ctx, "saving profile", "/api/perfis", request, &response); err != nil {
		return domain.Profile{}, err
	}
	return response.ToDomain(), nil
}

func (c *Client) Delete(ctx context.Context, name string) error {
	err := c.deleteRequest(ctx, "deleting profile", "/api/perfis/"+url.PathEscape(name))
	if isNotFound(err) {
		return usecases.ErrProfileNotFound
	}
	return err
}

func (c *Client) UploadCatalog(ctx context.Context, filename string, file io.Reader) (domain.Catalog, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return domain.Catalog{}, fmt.Errorf("copying catalog file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.Catalog{}, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("uploading catalog: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var response internal.UploadResponse
	if err := c.do("uploading catalog", req, &response); err != nil {
		return domain.Catalog{}, err
	}
	return response.ToDomain(), nil
}

func (c *Client) RenderPreview(ctx context.Context, product domain.Product, config domain.TemplateConfig) (string, error) {
	request := internal.PreviewRequest{
		Product: internal.FromProduct(product),
		Config:  internal.FromTemplateConfig(config),
	}

	var response internal.PreviewResponse
	if err := c.postJSON(ctx, "rendering preview", "/api/preview_placa", request, &response); err != nil {
		return "", err
	}
	return response.PreviewURL, nil
}

func (c *Client) ValidatePlacard(ctx context.Context, filename string, config domain.TemplateConfig, index int) (domain.PlacardVerdict, error) {
	request := internal.ValidateRequest{
		Filename:     filename,
		Config:       internal.FromTemplateConfig(config),
		ProductIndex: index,
	}

	var response internal.ValidateResponse
	if err := c.postJSON(ctx, "validating placard", "/api/gerar_placas_confirmacao", request, &response); err != nil {
		return domain.PlacardVerdict{}, err
	}
	return response.ToDomain(), nil
}

func (c *Client) AssembleDocument(ctx context.Context, filename string, config domain.TemplateConfig, selected []int) (domain.AssembledDocument, error) {
	request := internal.AssembleRequest{
		Filename:         filename,
		Config:           internal.FromTemplateConfig(config),
		SelectedProducts: selected,
	}

	var response internal.AssembleResponse
	if err := c.postJSON(ctx, "assembling document", "/api/gerar_placas", request, &response); err != nil {
		return domain.AssembledDocument{}, err
	}
	return response.ToDomain(), nil
}

func (c *Client) GenerateBarcode(ctx context.Context, code string) error {
	request := internal.BarcodeRequest{Code: code}
	return c.postJSON(ctx, "generating barcode", "/api/gerar_codigo_barras", request, nil)
}

func (c *Client) ListBackgrounds(ctx context.Context) ([]string, error) {
	var response internal.BackgroundsResponse
	if err := c.getJSON(ctx, "listing backgrounds", "/api/backgrounds", &response); err != nil {
		return nil, err
	}
	return response.Backgrounds, nil
}

func (c *Client) ListFonts(ctx context.Context) ([]string, error) {
	var response internal.FontsResponse
	if err := c.getJSON(ctx, "listing fonts", "/api/fonts", &response); err != nil {
		return nil, err
	}
	return response.Fonts, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) deleteRequest(ctx context.Context, op, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return c.do(op, req, nil)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error(op, slog.String("error", err.Error()))
		return &TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var payload internal.ErrorResponse
		json.NewDecoder(res.Body).Decode(&payload)
		return &ServiceError{Status: res.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr) && serviceErr.Status == http.StatusNotFound
}
