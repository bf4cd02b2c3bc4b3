package internal

import (
	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/usecases"
)

type VerdictResponse struct {
	Valid      bool     `json:"valid"`
	PreviewURL string   `json:"preview_url,omitempty"`
	Problems   []string `json:"problems,omitempty"`
}

func ToVerdictResponse(value domain.PlacardVerdict) VerdictResponse {
	return VerdictResponse{
		Valid:      value.Valid,
		PreviewURL: value.PreviewURL,
		Problems:   value.Problems,
	}
}

type RenderOutcomeResponse struct {
	Index   int             `json:"index"`
	Verdict VerdictResponse `json:"verdict"`
}

type ReportErrorResponse struct {
	Product  string   `json:"product"`
	Problems []string `json:"problems"`
}

type ReportResponse struct {
	TotalProducts int                   `json:"total_products"`
	ValidCount    int                   `json:"valid_count"`
	InvalidCount  int                   `json:"invalid_count"`
	Errors        []ReportErrorResponse `json:"errors"`
}

type ReviewResultResponse struct {
	DocumentURL  string         `json:"document_url"`
	Report       ReportResponse `json:"report"`
	Inconsistent bool           `json:"inconsistent,omitempty"`
}

type ReviewStepResponse struct {
	Phase   string                 `json:"phase"`
	Outcome *RenderOutcomeResponse `json:"outcome,omitempty"`
	Result  *ReviewResultResponse  `json:"result,omitempty"`
}

func ToReviewStepResponse(step usecases.ReviewStep) ReviewStepResponse {
	response := ReviewStepResponse{Phase: string(step.Phase)}

	if step.Outcome != nil {
		response.Outcome = &RenderOutcomeResponse{
			Index:   step.Outcome.Index,
			Verdict: ToVerdictResponse(step.Outcome.Verdict),
		}
	}

	if step.Result != nil {
		report := step.Result.Document.Report
		errs := make([]ReportErrorResponse, len(report.Errors))
		for i, e := range report.Errors {
			errs[i] = ReportErrorResponse{Product: e.Product, Problems: e.Problems}
		}
		response.Result = &ReviewResultResponse{
			DocumentURL: step.Result.Document.DocumentURL,
			Report: ReportResponse{
				TotalProducts: report.TotalProducts,
				ValidCount:    report.ValidCount,
				InvalidCount:  report.InvalidCount,
				Errors:        errs,
			},
			Inconsistent: step.Result.Inconsistent,
		}
	}

	return response
}

type SkippedProductResponse struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

type ReviewSnapshotResponse struct {
	Phase        string                   `json:"phase"`
	CurrentIndex int                      `json:"current_index"`
	Total        int                      `json:"total"`
	Confirmed    []int                    `json:"confirmed"`
	Skipped      []SkippedProductResponse `json:"skipped"`
}

func ToReviewSnapshotResponse(snapshot usecases.ReviewSnapshot) ReviewSnapshotResponse {
	skipped := make([]SkippedProductResponse, len(snapshot.Skipped))
	for i, s := range snapshot.Skipped {
		skipped[i] = SkippedProductResponse{Index: s.Index, Reasons: s.Reasons}
	}
	return ReviewSnapshotResponse{
		Phase:        string(snapshot.Phase),
		CurrentIndex: snapshot.CurrentIndex,
		Total:        snapshot.Total,
		Confirmed:    snapshot.Confirmed,
		Skipped:      skipped,
	}
}

type SkipRequest struct {
	Reasons []string `json:"reasons"`
}
