package marketing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"studioshot/internal/domain"
	"studioshot/internal/imagegen"
	"studioshot/internal/infra"
	"studioshot/internal/prompt"
	"studioshot/internal/sidechannel"
)

// SetRequest describes one marketing-set generation run.
type SetRequest struct {
	TemplateID  string
	Product     domain.ProductInfo
	Settings    domain.GenerationSettings
	Consistency sidechannel.ConsistencyConfig

	// PrimaryImage is the product's first upload, always attached as a
	// reference so color and subject stay anchored across slots.
	PrimaryImage string
}

// SlotResult pairs a slot with its generated asset. Err is set when that
// slot failed; other slots still complete.
type SlotResult struct {
	Slot   Slot
	Prompt string
	Asset  imagegen.ImageAsset
	Err    error
}

// Service compiles one prompt per slot and fans the generation calls out
// concurrently, throttled to stay inside the image API's rate limits.
type Service struct {
	generator imagegen.Generator
	limiter   *rate.Limiter
	logger    *infra.Logger
}

func NewService(generator imagegen.Generator, limiter *rate.Limiter, logger *infra.Logger) *Service {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(2), 1)
	}
	return &Service{generator: generator, limiter: limiter, logger: logger}
}

// GenerateSet produces one image per slot of the chosen template. Results
// come back in slot order. Per-slot failures are recorded, not fatal; only a
// cancelled context aborts the whole set.
func (s *Service) GenerateSet(ctx context.Context, req SetRequest) ([]SlotResult, error) {
	tmpl, ok := TemplateByID(req.TemplateID)
	if !ok {
		return nil, fmt.Errorf("generate set: unknown template %q", req.TemplateID)
	}
	return s.GenerateSlots(ctx, tmpl.Slots, req)
}

// GenerateSlots runs the given (possibly caller-edited) slots.
func (s *Service) GenerateSlots(ctx context.Context, slots []Slot, req SetRequest) ([]SlotResult, error) {
	results := make([]SlotResult, len(slots))

	g, ctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		i, slot := i, slot
		g.Go(func() error {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}

			compiled := s.compileSlot(slot, req)
			results[i] = SlotResult{Slot: slot, Prompt: compiled.FinalPrompt}

			settings := req.Settings
			settings.AspectRatio = slot.AspectRatio
			settings.Quantity = 1

			assets, err := s.generator.Generate(ctx, imagegen.GenerateRequest{
				Prompt:          compiled.FinalPrompt,
				NegativePrompt:  compiled.NegativePrompt,
				ReferenceImages: s.referenceImages(req),
				Settings:        settings,
				RequestID:       slot.ID,
			})
			if err != nil {
				if s.logger != nil {
					s.logger.Warn().Err(err).Str("slot", slot.ID).Msg("marketing: slot generation failed")
				}
				results[i].Err = err
				return nil
			}
			if len(assets) == 0 {
				results[i].Err = fmt.Errorf("slot %s: no image returned", slot.ID)
				return nil
			}
			results[i].Asset = assets[0]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// compileSlot builds the slot's prompt: the slot description replaces the
// scene context wholesale, the focus sharpens the detail layer, and the
// consistency prompt keeps the set coherent.
func (s *Service) compileSlot(slot Slot, req SetRequest) prompt.PromptConfig {
	cfg := prompt.Config{
		Product:  req.Product,
		Settings: req.Settings,
	}

	overrides := map[prompt.LayerType]string{}
	if slot.Description != "" {
		overrides[prompt.LayerSceneContext] = slot.Description
	}
	if slot.Focus != "" {
		overrides[prompt.LayerDetail] = fmt.Sprintf(
			"Focus specifically on: %s. Ensure this aspect is the visual center.", slot.Focus)
	}
	if len(overrides) > 0 {
		cfg.Overrides = overrides
	}

	cfg.ConsistencyPrompt = req.Consistency.BuildPrompt()

	return prompt.Compile(cfg)
}

func (s *Service) referenceImages(req SetRequest) []string {
	var refs []string
	if req.PrimaryImage != "" {
		refs = append(refs, req.PrimaryImage)
	}
	if req.Consistency.Enabled {
		for _, img := range req.Consistency.ReferenceImages {
			refs = append(refs, img.Data)
		}
	}
	return refs
}
