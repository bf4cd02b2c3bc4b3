package domain

import "time"

// Profile is a named, persisted TemplateConfig. Identity is the name
// (case-sensitive); saving an existing name overwrites it.
type Profile struct {
	Name      string
	CreatedAt time.Time
	Config    TemplateConfig
}
