package internal

type CursorResponse struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

type SelectRequest struct {
	Index int `json:"index"`
}

type PreviewResponse struct {
	PreviewURL string `json:"preview_url"`
}
