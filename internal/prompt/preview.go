package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var headingCaser = cases.Title(language.English)

// Preview formats every enabled layer with its weight followed by the final
// prompt. Debug output for human inspection, not for the generation flow.
func Preview(cfg Config) string {
	compiled := Compile(cfg)

	var sb strings.Builder
	sb.WriteString("=== Prompt Preview ===\n\n")

	for _, layer := range compiled.Layers {
		if !layer.Enabled {
			continue
		}
		heading := headingCaser.String(strings.ReplaceAll(string(layer.Name), "_", " "))
		fmt.Fprintf(&sb, "[%s] (weight: %.2f)\n%s\n\n", heading, layer.Weight, layer.Content)
	}

	sb.WriteString("=== Final Prompt ===\n")
	sb.WriteString(compiled.FinalPrompt)
	sb.WriteString("\n\nNegative: ")
	sb.WriteString(compiled.NegativePrompt)

	return sb.String()
}
