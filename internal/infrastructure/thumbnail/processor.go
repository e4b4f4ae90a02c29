package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	"image/jpeg"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	maxWidth    = 640
	jpegQuality = 90
)

type Processor struct {
	MaxSize int64 // bytes
}

func NewProcessor() *Processor {
	return &Processor{MaxSize: 5 * 1024 * 1024} // 5MB
}

// Validate checks JPEG/PNG/GIF, throws err when the file exceeds max size.
func (p *Processor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed", format)
	}
}

// Process resizes to fit 640px wide and re-encodes as JPEG quality 90.
func (p *Processor) Process(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	resized := imaging.Fit(img, maxWidth, maxWidth, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return b.Bytes(), nil
}
