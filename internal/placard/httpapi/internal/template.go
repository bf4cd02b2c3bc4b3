package internal

import (
	"errors"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/usecases"
)

var ErrUnknownActionType = errors.New("unknown action type")

type RectPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p RectPayload) ToDomain() domain.Rect {
	return domain.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func FromRect(value domain.Rect) RectPayload {
	return RectPayload{X: value.X, Y: value.Y, Width: value.Width, Height: value.Height}
}

type SizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func FromSize(value domain.Size) SizePayload {
	return SizePayload{Width: value.Width, Height: value.Height}
}

type FieldResponse struct {
	Visible       bool         `json:"visible"`
	Rect          RectPayload  `json:"rect"`
	FontFamily    string       `json:"font_family"`
	FontSize      int          `json:"font_size"`
	Color         string       `json:"color"`
	RenderAsImage bool         `json:"render_as_image,omitempty"`
	ImageSize     *SizePayload `json:"image_size,omitempty"`
}

type TemplateResponse struct {
	PageSize    string                   `json:"page_size"`
	Background  string                   `json:"background"`
	ShowBorders bool                     `json:"show_borders"`
	Fields      map[string]FieldResponse `json:"fields"`
}

func ToTemplateResponse(config domain.TemplateConfig) TemplateResponse {
	fields := make(map[string]FieldResponse, len(config.Fields))
	for key, field := range config.Fields {
		response := FieldResponse{
			Visible:    field.Visible,
			Rect:       FromRect(field.Rect),
			FontFamily: field.FontFamily,
			FontSize:   field.FontSize,
			Color:      field.Color,
		}
		if key == domain.FieldCode {
			response.RenderAsImage = field.RenderAsImage
			size := FromSize(field.ImageSize)
			response.ImageSize = &size
		}
		fields[key.String()] = response
	}

	return TemplateResponse{
		PageSize:    string(config.PageSize),
		Background:  config.Background,
		ShowBorders: config.ShowBorders,
		Fields:      fields,
	}
}

// ActionRequest is the tagged wire form of a template mutation. Type
// selects the action; the other members are read as that action needs.
type ActionRequest struct {
	Type       string       `json:"type"`
	Field      string       `json:"field,omitempty"`
	Rect       *RectPayload `json:"rect,omitempty"`
	Visible    *bool        `json:"visible,omitempty"`
	FontFamily string       `json:"font_family,omitempty"`
	FontSize   int          `json:"font_size,omitempty"`
	Color      string       `json:"color,omitempty"`
	Enabled    *bool        `json:"enabled,omitempty"`
	Size       *SizePayload `json:"size,omitempty"`
	PageSize   string       `json:"page_size,omitempty"`
	Background string       `json:"background,omitempty"`
}

func (r ActionRequest) ToAction() (usecases.Action, error) {
	key := domain.FieldKey(r.Field)

	switch r.Type {
	case "set_field_rect":
		if r.Rect == nil {
			return nil, errors.New("rect is required")
		}
		return usecases.SetFieldRect{Key: key, Rect: r.Rect.ToDomain()}, nil
	case "set_field_visible":
		if r.Visible == nil {
			return nil, errors.New("visible is required")
		}
		return usecases.SetFieldVisible{Key: key, Visible: *r.Visible}, nil
	case "set_field_font":
		return usecases.SetFieldFont{Key: key, FontFamily: r.FontFamily}, nil
	case "set_field_font_size":
		return usecases.SetFieldFontSize{Key: key, Size: r.FontSize}, nil
	case "set_field_color":
		return usecases.SetFieldColor{Key: key, Color: r.Color}, nil
	case "set_code_image":
		action := usecases.SetCodeImage{}
		if r.Enabled != nil {
			action.Enabled = *r.Enabled
		}
		if r.Size != nil {
			action.Size = domain.Size{Width: r.Size.Width, Height: r.Size.Height}
		}
		return action, nil
	case "set_page_size":
		return usecases.SetPageSize{Size: domain.PageSize(r.PageSize)}, nil
	case "set_background":
		return usecases.SetBackground{ID: r.Background}, nil
	case "set_borders":
		if r.Enabled == nil {
			return nil, errors.New("enabled is required")
		}
		return usecases.SetBorders{Enabled: *r.Enabled}, nil
	}

	return nil, ErrUnknownActionType
}
