package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studioshot/internal/domain"
	"studioshot/internal/insight"
)

func (a *App) GetProduct(w http.ResponseWriter, r *http.Request) {
	a.productMu.Lock()
	defer a.productMu.Unlock()
	a.json(w, http.StatusOK, map[string]any{
		"info":    a.Product.Info(),
		"images":  a.Product.Images(),
		"summary": a.Product.Summary(),
	})
}

func (a *App) SetProduct(w http.ResponseWriter, r *http.Request) {
	var info domain.ProductInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.productMu.Lock()
	a.Product.SetInfo(info)
	a.productMu.Unlock()
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

type uploadImageRequest struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Data     string `json:"data"`
}

// UploadImage registers a product image. The first upload triggers deep
// vision analysis; extracted attributes merge into the product info with
// user-entered fields taking precedence.
func (a *App) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	a.productMu.Lock()
	img, err := a.Product.AddImage(req.Name, req.MIMEType, req.Size, req.Data)
	if err != nil {
		a.productMu.Unlock()
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	analyze := a.Product.ShouldAnalyze(img.ID)
	info := a.Product.Info()
	a.productMu.Unlock()

	var applied *insight.ProductInsight
	if analyze && a.Analyzer != nil {
		userCtx := &insight.UserContext{Name: info.Name, Description: info.Description}
		result, err := a.Analyzer.Analyze(r.Context(), img.Data, userCtx)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("product: image analysis failed")
		} else {
			a.productMu.Lock()
			a.Product.UpdateInfo(result.Apply)
			a.productMu.Unlock()
			applied = &result
		}
	}

	a.json(w, http.StatusCreated, map[string]any{
		"image":    img,
		"analyzed": applied != nil,
		"insight":  applied,
	})
}

func (a *App) DeleteImage(w http.ResponseWriter, r *http.Request) {
	a.productMu.Lock()
	removed := a.Product.RemoveImage(chi.URLParam(r, "id"))
	a.productMu.Unlock()
	if !removed {
		a.error(w, http.StatusNotFound, "not_found", "unknown image")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (a *App) ReorderImages(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.productMu.Lock()
	ok := a.Product.ReorderImages(req.From, req.To)
	a.productMu.Unlock()
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid image positions")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) ClearProduct(w http.ResponseWriter, r *http.Request) {
	a.productMu.Lock()
	a.Product.Clear()
	a.productMu.Unlock()
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
