package internal

import (
	"time"

	"placard-server/internal/placard/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UploadResponse struct {
	Filename      string       `json:"filename"`
	Preview       []ProductRow `json:"preview"`
	TotalProducts int          `json:"total_produtos"`
	TotalProblems int          `json:"total_problemas"`
}

func (r UploadResponse) ToDomain() domain.Catalog {
	products := make([]domain.Product, 0, len(r.Preview))
	for _, row := range r.Preview {
		products = append(products, row.ToDomain())
	}
	return domain.Catalog{
		Filename:      r.Filename,
		Products:      products,
		TotalProducts: r.TotalProducts,
		TotalProblems: r.TotalProblems,
	}
}

type Profile struct {
	Name      string     `json:"nome"`
	CreatedAt time.Time  `json:"criado_em"`
	Config    FlatConfig `json:"config"`
}

func (p Profile) ToDomain() domain.Profile {
	return domain.Profile{
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Config:    p.Config.ToDomain(),
	}
}

type ProfileListResponse struct {
	Profiles []Profile `json:"perfis"`
}

type SaveProfileRequest struct {
	Name   string     `json:"nome"`
	Config FlatConfig `json:"config"`
}

type PreviewRequest struct {
	Product ProductRow `json:"produto"`
	Config  FlatConfig `json:"config"`
}

type PreviewResponse struct {
	PreviewURL string `json:"preview_url"`
}

type ValidateRequest struct {
	Filename     string     `json:"filename"`
	Config       FlatConfig `json:"config"`
	ProductIndex int        `json:"produto_index"`
}

type ValidateResponse struct {
	Valid      bool     `json:"valido"`
	PreviewURL string   `json:"preview_url"`
	Problems   []string `json:"problemas"`
}

func (r ValidateResponse) ToDomain() domain.PlacardVerdict {
	return domain.PlacardVerdict{
		Valid:      r.Valid,
		PreviewURL: r.PreviewURL,
		Problems:   r.Problems,
	}
}

type AssembleRequest struct {
	Filename         string     `json:"filename"`
	Config           FlatConfig `json:"config"`
	SelectedProducts []int      `json:"produtos_selecionados"`
}

type AssembleResponse struct {
	PDFURL string        `json:"pdf_url"`
	Report ReportPayload `json:"relatorio"`
}

func (r AssembleResponse) ToDomain() domain.AssembledDocument {
	return domain.AssembledDocument{
		DocumentURL: r.PDFURL,
		Report:      r.Report.ToDomain(),
	}
}

type ReportPayload struct {
	TotalProducts   int                  `json:"total_produtos"`
	ValidProducts   int                  `json:"produtos_validos"`
	InvalidProducts int                  `json:"produtos_invalidos"`
	Errors          []ReportErrorPayload `json:"erros"`
}

func (r ReportPayload) ToDomain() domain.Report {
	errs := make([]domain.ReportError, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, domain.ReportError{Product: e.Product, Problems: e.Problems})
	}
	return domain.Report{
		TotalProducts: r.TotalProducts,
		ValidCount:    r.ValidProducts,
		InvalidCount:  r.InvalidProducts,
		Errors:        errs,
	}
}

type ReportErrorPayload struct {
	Product  string   `json:"produto"`
	Problems []string `json:"problemas"`
}

type BarcodeRequest struct {
	Code string `json:"codigo"`
}

type BackgroundsResponse struct {
	Backgrounds []string `json:"backgrounds"`
}

type FontsResponse struct {
	Fonts []string `json:"fonts"`
}
