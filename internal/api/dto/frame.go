package dto

import (
	"iss-display-gadget/internal/domain"
	"time"
)

type FrameResponse struct {
	Mode      string            `json:"mode"`
	Lines     []domain.TextLine `json:"lines"`
	Backlight domain.Color      `json:"backlight"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

func NewFrameResponse(f domain.Frame) FrameResponse {
	res := FrameResponse{
		Mode:      f.Mode.String(),
		Lines:     f.Lines,
		Backlight: f.Backlight,
	}
	if res.Lines == nil {
		res.Lines = []domain.TextLine{}
	}
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		res.UpdatedAt = &t
	}
	return res
}

type ButtonResponse struct {
	Button string `json:"button"`
	Mode   string `json:"mode"`
}
