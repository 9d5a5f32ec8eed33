package sidechannel

import "strings"

type ConsistencyMode string

const (
	ConsistencyStyle     ConsistencyMode = "style"
	ConsistencyCharacter ConsistencyMode = "character"
	ConsistencyColor     ConsistencyMode = "color"
	ConsistencyBrand     ConsistencyMode = "brand"
)

// MaxConsistencyReferences caps how many reference images one consistency
// pass may carry; the image API rejects larger batches.
const MaxConsistencyReferences = 14

// ConsistencyConfig keeps a series of generations visually coherent with a
// set of reference images.
type ConsistencyConfig struct {
	Enabled         bool             `json:"enabled"`
	Mode            ConsistencyMode  `json:"mode"`
	ReferenceImages []ReferenceImage `json:"reference_images"`
	Strength        float64          `json:"strength"`
}

func DefaultConsistencyConfig() ConsistencyConfig {
	return ConsistencyConfig{Mode: ConsistencyStyle, Strength: 0.8}
}

// AddReference appends an image, refusing past the batch cap.
func (c *ConsistencyConfig) AddReference(img ReferenceImage) bool {
	if len(c.ReferenceImages) >= MaxConsistencyReferences {
		return false
	}
	c.ReferenceImages = append(c.ReferenceImages, img)
	return true
}

// RemoveReference drops the image with the given id.
func (c *ConsistencyConfig) RemoveReference(id string) {
	for i, img := range c.ReferenceImages {
		if img.ID == id {
			c.ReferenceImages = append(c.ReferenceImages[:i], c.ReferenceImages[i+1:]...)
			return
		}
	}
}

// SetStrength clamps to [0,1].
func (c *ConsistencyConfig) SetStrength(strength float64) {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	c.Strength = strength
}

func (c ConsistencyConfig) CanGenerate() bool {
	if !c.Enabled {
		return true
	}
	return len(c.ReferenceImages) > 0
}

var consistencyModePhrases = map[ConsistencyMode][]string{
	ConsistencyStyle: {
		"strictly maintain the artistic style, brushwork, and lighting of reference images",
		"adapt product to the reference style",
	},
	ConsistencyCharacter: {
		"maintain character identity, facial features, and body structure from references",
		"ensure character looks exactly like the person in reference images",
	},
	ConsistencyColor: {
		"match the exact color palette and tonal balance of reference images",
		"use dominant colors from references",
	},
	ConsistencyBrand: {
		"adhere to the brand visual identity shown in references",
		"maintain consistent sophisticated commercial look",
	},
}

// BuildPrompt renders the consistency instructions for the compiler's
// consistency layer. Strength is expressed through prompt emphasis.
func (c ConsistencyConfig) BuildPrompt() string {
	if !c.Enabled || len(c.ReferenceImages) == 0 {
		return ""
	}

	parts := []string{"use provided reference images for " + string(c.Mode) + " consistency"}
	parts = append(parts, consistencyModePhrases[c.Mode]...)

	if c.Strength > 0.8 {
		parts = append(parts, "high fidelity to references")
	} else if c.Strength < 0.5 {
		parts = append(parts, "loose inspiration from references")
	}

	return strings.Join(parts, ", ")
}
