package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/infrastructure/share"
)

const amazonIngredientLimit = 5

// ShareHandlers serves share links, social URLs, and QR codes
type ShareHandlers struct {
	codec  *share.Codec
	logger *zap.Logger
}

// NewShareHandlers creates a new share handlers instance
func NewShareHandlers(codec *share.Codec, logger *zap.Logger) *ShareHandlers {
	return &ShareHandlers{
		codec:  codec,
		logger: logger,
	}
}

type shareLinksResponse struct {
	ShareURL     string `json:"shareUrl"`
	TwitterURL   string `json:"twitterUrl"`
	FacebookURL  string `json:"facebookUrl"`
	PinterestURL string `json:"pinterestUrl"`
	AmazonURL    string `json:"amazonUrl"`
}

// Links handles POST /api/v1/share/links. It always succeeds: a recipe
// too large to embed yields the bare app URL rather than an error.
func (h *ShareHandlers) Links(w http.ResponseWriter, r *http.Request) {
	var body recipe.MixRecipe
	if !decodeBody(w, r, h.logger, &body) {
		return
	}

	names := share.ExtractIngredientNames(body.Ingredients, amazonIngredientLimit)
	resp := shareLinksResponse{
		ShareURL:     h.codec.Encode(body),
		TwitterURL:   h.codec.TwitterURL(body),
		FacebookURL:  h.codec.FacebookURL(body),
		PinterestURL: h.codec.PinterestURL(body),
		AmazonURL:    share.AmazonSearchURL(names),
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: resp})
}

type decodeShareRequest struct {
	URL string `json:"url"`
}

// Decode handles POST /api/v1/share/decode. A missing or broken payload
// is reported as not found, never as a decode error.
func (h *ShareHandlers) Decode(w http.ResponseWriter, r *http.Request) {
	var req decodeShareRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	decoded, ok, present := h.codec.DecodeURL(req.URL)
	if !present || !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: decoded})
}

// QRCode handles POST /api/v1/share/qr and responds with a PNG image.
func (h *ShareHandlers) QRCode(w http.ResponseWriter, r *http.Request) {
	var body recipe.MixRecipe
	if !decodeBody(w, r, h.logger, &body) {
		return
	}

	png, err := h.codec.QRCode(body)
	if err != nil {
		h.logger.Error("Failed to render QR code", zap.Error(err))
		writeJSON(w, h.logger, http.StatusInternalServerError, APIResponse{
			Success: false,
			Error:   "failed to render QR code",
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("Failed to write QR code response", zap.Error(err))
	}
}
