// Package marketing generates coordinated image sets (listing galleries,
// story sequences) from slot-based presets, one compiled prompt per slot.
package marketing

import "studioshot/internal/domain"

// Slot is one image position in a marketing set. Description overrides the
// scene context layer; Focus sharpens the detail layer.
type Slot struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Focus       string             `json:"focus"`
	AspectRatio domain.AspectRatio `json:"aspect_ratio"`
}

// SetTemplate is a preset collection of slots.
type SetTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Slots       []Slot `json:"slots"`
}

var setTemplates = []SetTemplate{
	{
		ID:          "amazon_listing",
		Name:        "Amazon Listing Set",
		Description: "High-conversion image set for Amazon product pages.",
		Icon:        "🛒",
		Slots: []Slot{
			{
				ID:          "slot_main",
				Name:        "1. Main Image",
				Description: "Pure white background studio shot, front view, 85% fill",
				AspectRatio: domain.AspectSquare,
			},
			{
				ID:          "slot_lifestyle",
				Name:        "2. Lifestyle",
				Description: "In a modern living room setting, soft natural lighting",
				AspectRatio: domain.AspectSquare,
			},
			{
				ID:          "slot_detail",
				Name:        "3. Detail Shot",
				Description: "Macro shot showing texture and craftsmanship, depth of field",
				Focus:       "showing the material texture",
				AspectRatio: domain.AspectSquare,
			},
			{
				ID:          "slot_feature",
				Name:        "4. Feature",
				Description: "Demonstrating key functionality or usage",
				AspectRatio: domain.AspectSquare,
			},
			{
				ID:          "slot_scale",
				Name:        "5. Scale/Context",
				Description: "Next to common objects to show scale",
				AspectRatio: domain.AspectSquare,
			},
		},
	},
	{
		ID:          "social_story",
		Name:        "Social Media Story",
		Description: "Aesthetic vertical images for Instagram/TikTok stories.",
		Icon:        "📱",
		Slots: []Slot{
			{
				ID:          "slot_cover",
				Name:        "1. Aesthetic Cover",
				Description: "Moody lighting, creative composition, emotional appeal",
				AspectRatio: domain.AspectVertical,
			},
			{
				ID:          "slot_model",
				Name:        "2. On Model / Hand",
				Description: "Held by a hand or worn by a model, lifestyle feel",
				AspectRatio: domain.AspectVertical,
			},
			{
				ID:          "slot_flatlay",
				Name:        "3. Creative Flatlay",
				Description: "Flat layouts with matching props, overhead view",
				AspectRatio: domain.AspectVertical,
			},
		},
	},
}

// Templates lists the preset set templates. Slots are deep-copied so callers
// can edit them freely.
func Templates() []SetTemplate {
	out := make([]SetTemplate, len(setTemplates))
	for i, t := range setTemplates {
		out[i] = t
		out[i].Slots = append([]Slot{}, t.Slots...)
	}
	return out
}

func TemplateByID(id string) (SetTemplate, bool) {
	for _, t := range setTemplates {
		if t.ID == id {
			t.Slots = append([]Slot{}, t.Slots...)
			return t, true
		}
	}
	return SetTemplate{}, false
}
