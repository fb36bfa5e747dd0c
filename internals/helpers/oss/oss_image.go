package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	imageMaxW    = 1600
	imageMaxH    = 1600
	webpQuality  = 80
	maxImageSize = 5 * 1024 * 1024
)

// UploadImage re-encodes an uploaded photo (jpeg/png/webp) to WebP, capped
// at 1600px on the long edge, and stores it under dir. Used for team-member
// portraits and book covers; receipts go through UploadFile untouched.
func (s *Service) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (key string, err error) {
	if fh.Size > maxImageSize {
		return "", fmt.Errorf("oss: image exceeds %d bytes", maxImageSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("oss: open form file: %w", err)
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return "", fmt.Errorf("oss: read form file: %w", err)
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}

	img = downscaleIfNeeded(img, imageMaxW, imageMaxH)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("oss: webp encode: %w", err)
	}

	return s.UploadBytes(ctx, dir, ".webp", out.Bytes(), "image/webp")
}

// decodeImage sniffs the MIME type before trusting the file extension.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("oss: empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("oss: unsupported image format: %s", ct)
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	fitted := imaging.Fit(src, maxW, maxH, imaging.CatmullRom)
	// imaging.Fit returns *image.NRGBA; re-draw keeps the draw.CatmullRom
	// quality for the webp encoder's RGBA input.
	dst := image.NewRGBA(fitted.Bounds())
	draw.Copy(dst, image.Point{}, fitted, fitted.Bounds(), draw.Over, nil)
	return dst
}
