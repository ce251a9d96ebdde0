// Package qr renders QR code images for driver route links.
package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// pixel size of the rendered square image
const imageSize = 256

// EncodePNG renders content as a QR code and returns the raw PNG bytes.
func EncodePNG(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, imageSize)
}

// EncodeDataURL renders content as a QR code and returns it as a PNG data
// URL suitable for direct embedding in an <img> tag.
func EncodeDataURL(content string) (string, error) {
	png, err := EncodePNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
