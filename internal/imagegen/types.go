package imagegen

import (
	"context"

	"studioshot/internal/domain"
)

// GenerateRequest carries one compiled prompt to the image backend. Prompt is
// a single natural-language instruction; NegativePrompt is a comma-joined
// exclusion list; ReferenceImages hold base64 data URLs or https URLs.
type GenerateRequest struct {
	Prompt          string                    `json:"prompt"`
	NegativePrompt  string                    `json:"negative_prompt"`
	ReferenceImages []string                  `json:"reference_images,omitempty"`
	Settings        domain.GenerationSettings `json:"settings"`
	RequestID       string                    `json:"request_id,omitempty"`
}

// ImageAsset is the normalized representation of one generated image.
type ImageAsset struct {
	StorageKey string `json:"storage_key,omitempty"`
	URL        string `json:"url,omitempty"`
	Format     string `json:"format"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Data       []byte `json:"-"`
}

// Generator produces product photographs from compiled prompts.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]ImageAsset, error)
}
