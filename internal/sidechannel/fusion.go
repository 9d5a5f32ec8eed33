package sidechannel

import "strings"

type FusionMode string

const (
	FusionProductScene FusionMode = "product_scene"
	FusionProductModel FusionMode = "product_model"
	FusionFull         FusionMode = "full"
)

type ReferenceImageRole string

const (
	RoleScene ReferenceImageRole = "scene"
	RoleModel ReferenceImageRole = "model"
	RoleStyle ReferenceImageRole = "style"
)

// ReferenceImage is one caller-supplied image forwarded to the generator
// alongside the prompt. Data carries base64 or a URL.
type ReferenceImage struct {
	ID   string             `json:"id"`
	Name string             `json:"name"`
	Role ReferenceImageRole `json:"role"`
	Data string             `json:"data"`
}

// FusionConfig blends the product into caller-supplied reference imagery.
type FusionConfig struct {
	Enabled    bool            `json:"enabled"`
	Mode       FusionMode      `json:"mode"`
	SceneImage *ReferenceImage `json:"scene_image,omitempty"`
	ModelImage *ReferenceImage `json:"model_image,omitempty"`
	StyleImage *ReferenceImage `json:"style_image,omitempty"`
}

// CanGenerate reports whether the required reference images for the chosen
// mode are present. A disabled fusion never blocks generation.
func (c FusionConfig) CanGenerate() bool {
	if !c.Enabled {
		return true
	}
	switch c.Mode {
	case FusionProductScene:
		return c.SceneImage != nil
	case FusionProductModel:
		return c.ModelImage != nil
	case FusionFull:
		return c.SceneImage != nil && c.ModelImage != nil
	}
	return false
}

// ReferenceImages lists the attached images in scene, model, style order.
func (c FusionConfig) ReferenceImages() []ReferenceImage {
	var images []ReferenceImage
	for _, img := range []*ReferenceImage{c.SceneImage, c.ModelImage, c.StyleImage} {
		if img != nil {
			images = append(images, *img)
		}
	}
	return images
}

// BuildPrompt renders the fusion instructions for the compiler's fusion layer.
func (c FusionConfig) BuildPrompt() string {
	if !c.Enabled {
		return ""
	}

	parts := []string{
		"seamlessly blend the product into the reference image",
		"match lighting and perspective of reference",
		"maintain consistent color grading",
		"photorealistic integration",
	}

	switch c.Mode {
	case FusionProductScene:
		parts = append(parts,
			"place product naturally in the scene background",
			"adjust product scale to fit scene perspective")
	case FusionProductModel:
		parts = append(parts,
			"model holding or using the product naturally",
			"realistic hand-product interaction")
	case FusionFull:
		parts = append(parts,
			"integrate product with model in the scene",
			"cohesive composition with all elements")
	}

	return strings.Join(parts, ", ")
}
