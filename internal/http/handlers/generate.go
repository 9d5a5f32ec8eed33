package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"studioshot/internal/history"
	"studioshot/internal/imagegen"
	"studioshot/internal/prompt"
	"studioshot/internal/registry"
)

type generateRequest struct {
	compileRequest

	// UseProductImages attaches the uploaded product images as references,
	// primary image first.
	UseProductImages bool `json:"use_product_images"`
}

type generateResponse struct {
	RecordID string                `json:"record_id"`
	Prompt   string                `json:"prompt"`
	Negative string                `json:"negative_prompt"`
	Assets   []imagegen.ImageAsset `json:"assets"`
}

// Generate compiles the prompt, runs the image generator, persists the
// assets and records the run in history.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Fusion != nil && req.Fusion.Enabled && !req.Fusion.CanGenerate() {
		a.error(w, http.StatusBadRequest, "bad_request", "fusion mode is missing required reference images")
		return
	}

	cfg := req.promptConfig()
	compiled := prompt.Compile(cfg)

	recordID := uuid.NewString()
	started := time.Now()
	assets, err := a.Generator.Generate(r.Context(), imagegen.GenerateRequest{
		Prompt:          compiled.FinalPrompt,
		NegativePrompt:  compiled.NegativePrompt,
		ReferenceImages: a.referencesFor(req),
		Settings:        cfg.Settings,
		RequestID:       recordID,
	})
	duration := time.Since(started)

	rec := &history.Record{
		ID:             recordID,
		ProductName:    cfg.Product.Name,
		SceneID:        compiled.Metadata.Scene,
		SceneName:      sceneName(compiled.Metadata.Scene),
		Prompt:         compiled.FinalPrompt,
		NegativePrompt: compiled.NegativePrompt,
		ImageCount:     len(assets),
		DurationMs:     duration.Milliseconds(),
		Thumbnails:     thumbnails(assets),
		CreatedAt:      started,
	}

	if err != nil {
		a.saveRecord(r, rec)
		a.Logger.Error().Err(err).Str("record_id", recordID).Msg("generate: image generation failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "image generation failed")
		return
	}

	a.persistAssets(r, "generated/"+recordID, assets)
	rec.Thumbnails = thumbnails(assets)
	a.saveRecord(r, rec)
	a.json(w, http.StatusOK, generateResponse{
		RecordID: recordID,
		Prompt:   compiled.FinalPrompt,
		Negative: compiled.NegativePrompt,
		Assets:   assets,
	})
}

// persistAssets writes asset bytes to the file store; a failed write only
// logs, the in-memory asset still reaches the client. Assets that arrive
// without a usable storage key get one derived from prefix and position.
func (a *App) persistAssets(r *http.Request, prefix string, assets []imagegen.ImageAsset) {
	if a.Store == nil {
		return
	}
	for i := range assets {
		if len(assets[i].Data) == 0 {
			continue
		}
		key := assets[i].StorageKey
		if key == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
			key = fmt.Sprintf("%s/%02d%s", prefix, i+1, formatExtension(assets[i].Format))
		}
		stored, err := a.Store.Write(r.Context(), key, assets[i].Data)
		if err != nil {
			a.Logger.Warn().Err(err).Str("key", key).Msg("storage: asset write failed")
			continue
		}
		assets[i].StorageKey = stored
		assets[i].URL = a.Cfg.StorageBaseURL + "/" + stored
	}
}

func formatExtension(format string) string {
	switch format {
	case "image/jpeg", "jpeg", "jpg":
		return ".jpg"
	case "image/webp", "webp":
		return ".webp"
	default:
		return ".png"
	}
}

func (a *App) referencesFor(req generateRequest) []string {
	var refs []string
	if req.UseProductImages {
		a.productMu.Lock()
		refs = append(refs, a.Product.ImageData()...)
		a.productMu.Unlock()
	}
	if req.Fusion != nil && req.Fusion.Enabled {
		for _, img := range req.Fusion.ReferenceImages() {
			refs = append(refs, img.Data)
		}
	}
	if req.Consistency != nil && req.Consistency.Enabled {
		for _, img := range req.Consistency.ReferenceImages {
			refs = append(refs, img.Data)
		}
	}
	return refs
}

func (a *App) saveRecord(r *http.Request, rec *history.Record) {
	if a.History == nil {
		return
	}
	if err := a.History.Save(r.Context(), rec); err != nil {
		a.Logger.Warn().Err(err).Msg("history: save failed")
	}
}

func sceneName(sceneID string) string {
	if scene, ok := registry.SceneByID(sceneID); ok {
		return scene.Name
	}
	return sceneID
}

func thumbnails(assets []imagegen.ImageAsset) []string {
	var urls []string
	for _, asset := range assets {
		urls = append(urls, asset.URL)
		if len(urls) == 4 {
			break
		}
	}
	return urls
}
