package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studioshot/internal/domain"
	"studioshot/internal/history"
	"studioshot/internal/imagegen"
	"studioshot/internal/marketing"
	"studioshot/internal/sidechannel"
	"studioshot/pkg/zip"
)

func (a *App) MarketingTemplates(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": marketing.Templates()})
}

type marketingSetRequest struct {
	TemplateID  string                         `json:"template_id"`
	Product     *domain.ProductInfo            `json:"product"`
	Settings    *domain.GenerationSettings     `json:"settings"`
	Consistency *sidechannel.ConsistencyConfig `json:"consistency"`
}

type marketingSlotResponse struct {
	Slot   marketing.Slot `json:"slot"`
	Prompt string         `json:"prompt"`
	URL    string         `json:"url,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type marketingSetResponse struct {
	SetID       string                  `json:"set_id"`
	DownloadURL string                  `json:"download_url"`
	Slots       []marketingSlotResponse `json:"slots"`
}

// MarketingGenerate runs a full marketing set. The product defaults to the
// session product, the primary upload is always the anchoring reference, and
// the finished set is archived for download.
func (a *App) MarketingGenerate(w http.ResponseWriter, r *http.Request) {
	var req marketingSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	setReq := marketing.SetRequest{TemplateID: req.TemplateID}

	a.productMu.Lock()
	if req.Product != nil {
		setReq.Product = *req.Product
	} else {
		setReq.Product = a.Product.Info()
	}
	if primary, ok := a.Product.PrimaryImage(); ok {
		setReq.PrimaryImage = primary.Data
	}
	a.productMu.Unlock()

	if setReq.Product.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "product required")
		return
	}
	if req.Settings != nil {
		setReq.Settings = *req.Settings
	} else {
		setReq.Settings = domain.DefaultSettings()
	}
	if req.Consistency != nil {
		setReq.Consistency = *req.Consistency
	}

	started := time.Now()
	results, err := a.Marketing.GenerateSet(r.Context(), setReq)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	setID := uuid.NewString()
	resp := marketingSetResponse{SetID: setID}

	var archive []zip.Asset
	var imageCount int
	for i := range results {
		res := &results[i]
		slot := marketingSlotResponse{Slot: res.Slot, Prompt: res.Prompt}
		if res.Err != nil {
			slot.Error = res.Err.Error()
		} else {
			imageCount++
			if len(res.Asset.Data) > 0 {
				persisted := []imagegen.ImageAsset{res.Asset}
				persisted[0].StorageKey = fmt.Sprintf("sets/%s/%s%s", setID, res.Slot.ID, formatExtension(res.Asset.Format))
				persisted[0].URL = ""
				a.persistAssets(r, fmt.Sprintf("sets/%s", setID), persisted)
				res.Asset = persisted[0]
				archive = append(archive, zip.Asset{
					Filename: fmt.Sprintf("%s.png", res.Slot.ID),
					MIME:     res.Asset.Format,
					Data:     res.Asset.Data,
				})
			}
			slot.URL = res.Asset.URL
		}
		resp.Slots = append(resp.Slots, slot)
	}

	if a.Store != nil && len(archive) > 0 {
		key := fmt.Sprintf("sets/%s.zip", setID)
		if _, err := a.Store.Write(r.Context(), key, zip.ArchiveAssets(archive)); err != nil {
			a.Logger.Warn().Err(err).Str("set_id", setID).Msg("storage: set archive write failed")
		} else {
			resp.DownloadURL = fmt.Sprintf("/v1/marketing/sets/%s/download", setID)
		}
	}

	a.saveRecord(r, &history.Record{
		ID:          setID,
		ProductName: setReq.Product.Name,
		SceneID:     req.TemplateID,
		SceneName:   templateName(req.TemplateID),
		Prompt:      firstPrompt(results),
		ImageCount:  imageCount,
		DurationMs:  time.Since(started).Milliseconds(),
		Thumbnails:  slotThumbnails(results),
		CreatedAt:   started,
	})

	a.json(w, http.StatusOK, resp)
}

// MarketingDownload streams the archived set.
func (a *App) MarketingDownload(w http.ResponseWriter, r *http.Request) {
	setID := chi.URLParam(r, "id")
	data, err := a.Store.Read(r.Context(), fmt.Sprintf("sets/%s.zip", setID))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown set")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=set-%s.zip", setID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func templateName(templateID string) string {
	if tmpl, ok := marketing.TemplateByID(templateID); ok {
		return tmpl.Name
	}
	return templateID
}

func firstPrompt(results []marketing.SlotResult) string {
	for _, res := range results {
		if res.Prompt != "" {
			return res.Prompt
		}
	}
	return ""
}

func slotThumbnails(results []marketing.SlotResult) []string {
	var urls []string
	for _, res := range results {
		if res.Err != nil || res.Asset.URL == "" {
			continue
		}
		urls = append(urls, res.Asset.URL)
		if len(urls) == 4 {
			break
		}
	}
	return urls
}
