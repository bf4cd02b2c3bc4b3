package domain

// PlacardVerdict is the rendering service's opaque validity verdict for a
// single product. An invalid product is a first-class outcome, not an
// error: Problems carries the service-provided descriptions verbatim.
type PlacardVerdict struct {
	Valid      bool
	PreviewURL string
	Problems   []string
}

// SkippedProduct records one skipped index and why.
type SkippedProduct struct {
	Index   int
	Reasons []string
}

// ConfirmationState is the mutable state of one review run. It is created
// fresh on start, mutated only by the workflow's own transitions, and
// discarded once a report is produced or the run is cancelled.
type ConfirmationState struct {
	CurrentIndex int
	Confirmed    []int
	Skipped      []SkippedProduct
}

// Report is produced by the external document assembler and consumed
// verbatim; counts are not recomputed locally.
type Report struct {
	TotalProducts int
	ValidCount    int
	InvalidCount  int
	Errors        []ReportError
}

type ReportError struct {
	Product  string
	Problems []string
}

// AssembledDocument is the final output of a review run.
type AssembledDocument struct {
	DocumentURL string
	Report      Report
}
