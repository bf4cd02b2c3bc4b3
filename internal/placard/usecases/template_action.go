package usecases

import (
	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/geometry"
)

// Action is a tagged mutation request for the template configuration.
// Every edit goes through TemplateService.Dispatch with one of these, so
// there is a single entry point instead of a setter per control.
type Action interface {
	isAction()
}

type SetFieldRect struct {
	Key  domain.FieldKey
	Rect domain.Rect
}

type SetFieldVisible struct {
	Key     domain.FieldKey
	Visible bool
}

type SetFieldFont struct {
	Key        domain.FieldKey
	FontFamily string
}

type SetFieldFontSize struct {
	Key  domain.FieldKey
	Size int
}

type SetFieldColor struct {
	Key   domain.FieldKey
	Color string
}

type SetCodeImage struct {
	Enabled bool
	Size    domain.Size
}

type SetPageSize struct {
	Size domain.PageSize
}

type SetBackground struct {
	ID string
}

type SetBorders struct {
	Enabled bool
}

func (SetFieldRect) isAction()     {}
func (SetFieldVisible) isAction()  {}
func (SetFieldFont) isAction()     {}
func (SetFieldFontSize) isAction() {}
func (SetFieldColor) isAction()    {}
func (SetCodeImage) isAction()     {}
func (SetPageSize) isAction()      {}
func (SetBackground) isAction()    {}
func (SetBorders) isAction()       {}

// reduce produces the next configuration for an action. It is pure: the
// input is cloned before any change. Rect updates are clamped to the
// minimum size before being stored.
func reduce(config domain.TemplateConfig, action Action) (domain.TemplateConfig, error) {
	next := config.Clone()

	switch a := action.(type) {
	case SetFieldRect:
		field, ok := next.Fields[a.Key]
		if !ok {
			return config, ErrUnknownField
		}
		field.Rect = geometry.ClampRect(a.Rect)
		next.Fields[a.Key] = field
	case SetFieldVisible:
		field, ok := next.Fields[a.Key]
		if !ok {
			return config, ErrUnknownField
		}
		field.Visible = a.Visible
		next.Fields[a.Key] = field
	case SetFieldFont:
		field, ok := next.Fields[a.Key]
		if !ok {
			return config, ErrUnknownField
		}
		field.FontFamily = a.FontFamily
		next.Fields[a.Key] = field
	case SetFieldFontSize:
		field, ok := next.Fields[a.Key]
		if !ok {
			return config, ErrUnknownField
		}
		if a.Size > 0 {
			field.FontSize = a.Size
		}
		next.Fields[a.Key] = field
	case SetFieldColor:
		field, ok := next.Fields[a.Key]
		if !ok {
			return config, ErrUnknownField
		}
		field.Color = a.Color
		next.Fields[a.Key] = field
	case SetCodeImage:
		field := next.Fields[domain.FieldCode]
		field.RenderAsImage = a.Enabled
		if a.Size.Width > 0 && a.Size.Height > 0 {
			field.ImageSize = a.Size
		}
		next.Fields[domain.FieldCode] = field
	case SetPageSize:
		if a.Size.Valid() {
			next.PageSize = a.Size
		}
	case SetBackground:
		next.Background = a.ID
	case SetBorders:
		next.ShowBorders = a.Enabled
	}

	return next, nil
}
