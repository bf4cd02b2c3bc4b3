package internal

import (
	"placard-server/internal/placard/geometry"
)

type GestureMoveRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (r GestureMoveRequest) ToDelta() geometry.Delta {
	return geometry.Delta{DX: r.DX, DY: r.DY}
}

type BeginResizeRequest struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
}

func (r BeginResizeRequest) ToEdges() geometry.Edges {
	return geometry.Edges{Left: r.Left, Right: r.Right, Top: r.Top, Bottom: r.Bottom}
}

type RectResponse struct {
	Rect RectPayload `json:"rect"`
}

type DimensionsResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
