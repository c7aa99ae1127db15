// Package share implements the recipe share-link codec plus the social and
// shopping URL builders layered on it.
package share

import (
	"encoding/base64"
	"encoding/json"
	"net/url"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// shareParam is the query parameter carrying the encoded recipe.
const shareParam = "r"

// maxEncodedLength caps the encoded payload so absurdly long URLs are
// rejected on both ends.
const maxEncodedLength = 10000

// Codec encodes recipes into URL query payloads and back. Both directions
// degrade silently: Encode falls back to the bare base URL, Decode reports
// ok=false.
type Codec struct {
	baseURL string
	logger  *zap.Logger
}

// NewCodec creates a codec producing links on baseURL.
func NewCodec(baseURL string, logger *zap.Logger) *Codec {
	return &Codec{baseURL: baseURL, logger: logger.Named("share")}
}

// Encode returns a URL carrying the recipe as a base64 JSON query payload.
// If the payload exceeds the length ceiling the base URL is returned
// unchanged, so callers must not assume the result contains share data.
func (c *Codec) Encode(r recipe.MixRecipe) string {
	raw, err := json.Marshal(r)
	if err != nil {
		c.logger.Warn("share encoding failed", zap.Error(err))
		return c.baseURL
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	if len(encoded) > maxEncodedLength {
		c.logger.Warn("recipe too large to share via URL",
			zap.String("recipe_id", r.ID),
			zap.Int("encoded_length", len(encoded)),
		)
		return c.baseURL
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL
	}
	q := u.Query()
	q.Set(shareParam, encoded)
	u.RawQuery = q.Encode()
	return u.String()
}

// Decode reverses Encode given the raw query parameter value. Absent,
// oversized, undecodable, or shape-invalid payloads all yield ok=false with
// no error surfaced.
func (c *Codec) Decode(param string) (recipe.MixRecipe, bool) {
	if param == "" || len(param) > maxEncodedLength {
		return recipe.MixRecipe{}, false
	}
	raw, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return recipe.MixRecipe{}, false
	}
	return recipe.DecodeRecipe(raw)
}

// DecodeURL extracts and decodes the share parameter from a full URL.
// The second result reports whether the parameter was present at all, so
// callers can distinguish "no share link" from "broken share link".
func (c *Codec) DecodeURL(rawURL string) (r recipe.MixRecipe, ok bool, present bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return recipe.MixRecipe{}, false, false
	}
	if !u.Query().Has(shareParam) {
		return recipe.MixRecipe{}, false, false
	}
	r, ok = c.Decode(u.Query().Get(shareParam))
	return r, ok, true
}
