package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// qrSize is the generated PNG edge length in pixels.
const qrSize = 256

// QRCode renders the recipe's share link as a PNG QR code. Fails when the
// encoded URL exceeds QR capacity, which large recipes can.
func (c *Codec) QRCode(r recipe.MixRecipe) ([]byte, error) {
	link := c.Encode(r)
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode share QR code: %w", err)
	}
	return png, nil
}
