package domain

// PageSize is one of the supported ISO paper sizes.
type PageSize string

const (
	PageA3 PageSize = "A3"
	PageA4 PageSize = "A4"
	PageA5 PageSize = "A5"
	PageA6 PageSize = "A6"
)

// DefaultBackground selects the plain white page background.
const DefaultBackground = "default"

var pageDimensions = map[PageSize]Size{
	PageA3: {Width: 842, Height: 1191},
	PageA4: {Width: 595, Height: 842},
	PageA5: {Width: 420, Height: 595},
	PageA6: {Width: 297, Height: 420},
}

func (p PageSize) Valid() bool {
	_, ok := pageDimensions[p]
	return ok
}

// Dimensions returns the page canvas size in template-space units.
// Unknown sizes fall back to A4.
func (p PageSize) Dimensions() Size {
	if dims, ok := pageDimensions[p]; ok {
		return dims
	}
	return pageDimensions[PageA4]
}

// TemplateConfig aggregates the whole placard layout for a session. It is
// the unit persisted as a named Profile by the rendering service.
type TemplateConfig struct {
	PageSize    PageSize
	Background  string
	ShowBorders bool
	Fields      map[FieldKey]FieldConfig
}

// DefaultTemplateConfig returns the documented built-in layout.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		PageSize:    PageA4,
		Background:  DefaultBackground,
		ShowBorders: true,
		Fields: map[FieldKey]FieldConfig{
			FieldName: {
				Visible:    true,
				Rect:       Rect{X: 20, Y: 50, Width: 300, Height: 100},
				FontFamily: "Helvetica-Bold",
				FontSize:   20,
				Color:      "#2D3748",
			},
			FieldPrice: {
				Visible:    true,
				Rect:       Rect{X: 20, Y: 100, Width: 200, Height: 50},
				FontFamily: "Helvetica-Bold",
				FontSize:   28,
				Color:      "#E53E3E",
			},
			FieldDate: {
				Visible:    true,
				Rect:       Rect{X: 20, Y: 150, Width: 250, Height: 40},
				FontFamily: "Helvetica-Bold",
				FontSize:   14,
				Color:      "#4A5568",
			},
			FieldCode: {
				Visible:       true,
				Rect:          Rect{X: 20, Y: 180, Width: 200, Height: 40},
				FontFamily:    "Helvetica-Bold",
				FontSize:      12,
				Color:         "#718096",
				RenderAsImage: false,
				ImageSize:     Size{Width: 120, Height: 30},
			},
		},
	}
}

// Clone returns a deep copy so callers never alias the owner's field map.
func (c TemplateConfig) Clone() TemplateConfig {
	fields := make(map[FieldKey]FieldConfig, len(c.Fields))
	for key, field := range c.Fields {
		fields[key] = field
	}
	c.Fields = fields
	return c
}

func (c TemplateConfig) Field(key FieldKey) (FieldConfig, bool) {
	field, ok := c.Fields[key]
	return field, ok
}
