package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const MaxReceiptSize = 5 * 1024 * 1024 // 5MB, mirrored server-side by the storage boundary

// Receipt proofs: images or PDF only.
var allowedReceiptTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"application/pdf": {},
}

var allowedReceiptExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// ValidateReceipt is the fast-fail gate before any bytes leave the process.
// It checks declared content type (falling back to the extension) and size.
func ValidateReceipt(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("no file provided")
	}
	if fh.Size > MaxReceiptSize {
		return fmt.Errorf("file exceeds the 5MB limit")
	}
	if fh.Size == 0 {
		return fmt.Errorf("file is empty")
	}

	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct != "" {
		if _, ok := allowedReceiptTypes[ct]; ok {
			return nil
		}
		return fmt.Errorf("file type %s is not allowed; use JPEG, PNG or PDF", ct)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedReceiptExts[ext]; ok {
		return nil
	}
	return fmt.Errorf("file type is not allowed; use JPEG, PNG or PDF")
}
