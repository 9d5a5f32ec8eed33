// Package product manages the working product: its editable info fields and
// the uploaded reference images the analysis pipeline feeds on.
package product

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studioshot/internal/domain"
)

const (
	// MaxImages caps uploads per product.
	MaxImages = 3
	// MaxImageSize is the per-file upload limit in bytes.
	MaxImageSize = 10 << 20
)

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Image is one uploaded product photo held in memory as a data URL.
type Image struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MIMEType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	Data       string    `json:"data"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Store holds one product under edit. Not safe for concurrent use; the HTTP
// layer serializes access per session.
type Store struct {
	info   domain.ProductInfo
	images []Image
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Info() domain.ProductInfo {
	return s.info
}

// SetInfo replaces the editable fields wholesale.
func (s *Store) SetInfo(info domain.ProductInfo) {
	s.info = info
}

// UpdateInfo applies a partial edit via the callback.
func (s *Store) UpdateInfo(fn func(*domain.ProductInfo)) {
	fn(&s.info)
}

func (s *Store) AddFeature(feature string) {
	for _, f := range s.info.Features {
		if f == feature {
			return
		}
	}
	s.info.Features = append(s.info.Features, feature)
}

func (s *Store) HasProduct() bool {
	return strings.TrimSpace(s.info.Name) != ""
}

// Summary is the short human-readable label shown in history entries.
func (s *Store) Summary() string {
	var parts []string
	if s.info.Name != "" {
		parts = append(parts, s.info.Name)
	}
	if s.info.Brand != "" {
		parts = append(parts, "by "+s.info.Brand)
	}
	if s.info.Category != "" {
		parts = append(parts, "("+s.info.Category+")")
	}
	return strings.Join(parts, " ")
}

func (s *Store) Images() []Image {
	return append([]Image{}, s.images...)
}

func (s *Store) ImageCount() int {
	return len(s.images)
}

// PrimaryImage is the first upload; it anchors analysis and color transfer.
func (s *Store) PrimaryImage() (Image, bool) {
	if len(s.images) == 0 {
		return Image{}, false
	}
	return s.images[0], true
}

func (s *Store) CanAddImage() bool {
	return len(s.images) < MaxImages
}

// AddImage validates and stores one upload, returning the stored record.
func (s *Store) AddImage(name, mimeType string, size int64, data string) (Image, error) {
	if !s.CanAddImage() {
		return Image{}, fmt.Errorf("add image: limit of %d reached", MaxImages)
	}
	if !acceptedImageTypes[mimeType] {
		return Image{}, fmt.Errorf("add image: unsupported type %s", mimeType)
	}
	if size > MaxImageSize {
		return Image{}, fmt.Errorf("add image: %d bytes exceeds %d limit", size, MaxImageSize)
	}

	img := Image{
		ID:         uuid.NewString(),
		Name:       name,
		MIMEType:   mimeType,
		Size:       size,
		Data:       data,
		UploadedAt: time.Now(),
	}
	s.images = append(s.images, img)
	return img, nil
}

// ShouldAnalyze reports whether adding the given image should trigger the
// full AI analysis pass. Only the first upload does: later images refine the
// visual reference set without re-deriving product facts.
func (s *Store) ShouldAnalyze(imageID string) bool {
	return len(s.images) == 1 && s.images[0].ID == imageID
}

// RemoveImage drops an image by id. Removing the last image also clears
// every image-derived product field: their source of truth is gone.
func (s *Store) RemoveImage(id string) bool {
	for i, img := range s.images {
		if img.ID != id {
			continue
		}
		s.images = append(s.images[:i], s.images[i+1:]...)
		if len(s.images) == 0 {
			s.info.ClearImageDerived()
		}
		return true
	}
	return false
}

// ReorderImages moves the image at from to position to.
func (s *Store) ReorderImages(from, to int) bool {
	if from < 0 || from >= len(s.images) || to < 0 || to >= len(s.images) {
		return false
	}
	img := s.images[from]
	s.images = append(s.images[:from], s.images[from+1:]...)
	s.images = append(s.images[:to], append([]Image{img}, s.images[to:]...)...)
	return true
}

// ImageData lists the raw data of every upload in order, for handing to the
// generator as reference images.
func (s *Store) ImageData() []string {
	data := make([]string, 0, len(s.images))
	for _, img := range s.images {
		data = append(data, img.Data)
	}
	return data
}

// Clear resets the store to its initial empty state.
func (s *Store) Clear() {
	s.info = domain.ProductInfo{}
	s.images = nil
}
