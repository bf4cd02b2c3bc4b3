package internal

import (
	"placard-server/internal/placard/domain"
)

// FlatConfig is the rendering service's wire form of a template: a flat
// key-value map with Portuguese keys.
type FlatConfig map[string]any

var fieldPrefixes = map[domain.FieldKey]string{
	domain.FieldName:  "nome",
	domain.FieldPrice: "valor",
	domain.FieldDate:  "data",
	domain.FieldCode:  "codigo",
}

func FromTemplateConfig(config domain.TemplateConfig) FlatConfig {
	flat := FlatConfig{
		"tamanho": string(config.PageSize),
		"fundo":   config.Background,
		"bordas":  config.ShowBorders,
	}

	for key, prefix := range fieldPrefixes {
		field, ok := config.Field(key)
		if !ok {
			continue
		}
		flat[prefix+"_visivel"] = field.Visible
		flat[prefix+"_x"] = field.Rect.X
		flat[prefix+"_y"] = field.Rect.Y
		flat[prefix+"_largura"] = field.Rect.Width
		flat[prefix+"_altura"] = field.Rect.Height
		flat["fonte_"+prefix] = field.FontFamily
		flat["fonte_tamanho_"+prefix] = field.FontSize
		flat[prefix+"_cor"] = field.Color
	}

	if code, ok := config.Field(domain.FieldCode); ok {
		flat["usar_imagem_codigo"] = code.RenderAsImage
		flat["codigo_largura_imagem"] = code.ImageSize.Width
		flat["codigo_altura_imagem"] = code.ImageSize.Height
	}

	return flat
}

// ToDomain inflates a flat wire config by merging its present keys over
// the built-in defaults. Missing keys keep the default value.
func (f FlatConfig) ToDomain() domain.TemplateConfig {
	config := domain.DefaultTemplateConfig()

	if v, ok := stringValue(f["tamanho"]); ok {
		if size := domain.PageSize(v); size.Valid() {
			config.PageSize = size
		}
	}
	if v, ok := stringValue(f["fundo"]); ok {
		config.Background = v
	}
	if v, ok := boolValue(f["bordas"]); ok {
		config.ShowBorders = v
	}

	for key, prefix := range fieldPrefixes {
		field := config.Fields[key]
		if v, ok := boolValue(f[prefix+"_visivel"]); ok {
			field.Visible = v
		}
		if v, ok := numberValue(f[prefix+"_x"]); ok {
			field.Rect.X = v
		}
		if v, ok := numberValue(f[prefix+"_y"]); ok {
			field.Rect.Y = v
		}
		if v, ok := numberValue(f[prefix+"_largura"]); ok {
			field.Rect.Width = v
		}
		if v, ok := numberValue(f[prefix+"_altura"]); ok {
			field.Rect.Height = v
		}
		if v, ok := stringValue(f["fonte_"+prefix]); ok {
			field.FontFamily = v
		}
		if v, ok := intValue(f["fonte_tamanho_"+prefix]); ok {
			field.FontSize = v
		}
		if v, ok := stringValue(f[prefix+"_cor"]); ok {
			field.Color = v
		}
		config.Fields[key] = field
	}

	code := config.Fields[domain.FieldCode]
	if v, ok := boolValue(f["usar_imagem_codigo"]); ok {
		code.RenderAsImage = v
	}
	if v, ok := numberValue(f["codigo_largura_imagem"]); ok {
		code.ImageSize.Width = v
	}
	if v, ok := numberValue(f["codigo_altura_imagem"]); ok {
		code.ImageSize.Height = v
	}
	config.Fields[domain.FieldCode] = code

	return config
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func boolValue(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// numberValue accepts both decoded JSON numbers and native Go numbers.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func intValue(v any) (int, bool) {
	n, ok := numberValue(v)
	return int(n), ok
}
