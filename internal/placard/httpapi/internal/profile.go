package internal

import (
	"time"

	"placard-server/internal/placard/domain"
)

type ProfileResponse struct {
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Config    TemplateResponse `json:"config"`
}

func ToProfileResponse(value domain.Profile) ProfileResponse {
	return ProfileResponse{
		Name:      value.Name,
		CreatedAt: value.CreatedAt,
		Config:    ToTemplateResponse(value.Config),
	}
}

type ProfileListResponse struct {
	Data []ProfileResponse `json:"data"`
}

type SaveProfileRequest struct {
	Name string `json:"name"`
}
