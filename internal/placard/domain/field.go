package domain

// FieldKey identifies one of the four printable fields of a placard.
// The set is closed; all per-field configuration is indexed by it.
type FieldKey string

const (
	FieldName  FieldKey = "name"
	FieldPrice FieldKey = "price"
	FieldDate  FieldKey = "date"
	FieldCode  FieldKey = "code"
)

// FieldKeys returns every field key in canonical order.
func FieldKeys() []FieldKey {
	return []FieldKey{FieldName, FieldPrice, FieldDate, FieldCode}
}

func (k FieldKey) Valid() bool {
	switch k {
	case FieldName, FieldPrice, FieldDate, FieldCode:
		return true
	}
	return false
}

func (k FieldKey) String() string {
	return string(k)
}

// Rect is a field rectangle in template-space units (top-left origin,
// same units as the page).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Size struct {
	Width  float64
	Height float64
}

// FieldConfig holds the layout and styling of a single placard field.
// RenderAsImage and ImageSize are only meaningful for the code field.
type FieldConfig struct {
	Visible       bool
	Rect          Rect
	FontFamily    string
	FontSize      int
	Color         string
	RenderAsImage bool
	ImageSize     Size
}
