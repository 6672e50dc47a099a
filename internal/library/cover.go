package library

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrNoCover is returned for an empty cover reference.
var ErrNoCover = errors.New("library: no cover art")

// DecodeDataURI splits a base64 data URI into its MIME type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	if uri == "" {
		return "", nil, ErrNoCover
	}
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("library: not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("library: malformed data URI")
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("library: data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("library: decode data URI: %w", err)
	}
	return mimeType, data, nil
}

// Thumbnail decodes a cover data URI and crops it to a size×size square.
func Thumbnail(uri string, size int) (image.Image, error) {
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("library: decode cover: %w", err)
	}
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
}
