package service

import (
	"mime/multipart"
	"net/textproto"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: name,
		Size:     size,
	}
	h.Header = textproto.MIMEHeader{}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func TestValidateReceipt(t *testing.T) {
	cases := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr bool
	}{
		{"png within limit", header("proof.png", "image/png", 4*1024*1024), false},
		{"jpeg ok", header("proof.jpg", "image/jpeg", 100), false},
		{"pdf ok", header("proof.pdf", "application/pdf", 100), false},
		{"gif rejected", header("proof.gif", "image/gif", 100), true},
		{"png over 5MB rejected", header("proof.png", "image/png", 6*1024*1024), true},
		{"exactly 5MB allowed", header("proof.png", "image/png", 5*1024*1024), false},
		{"empty file rejected", header("proof.png", "image/png", 0), true},
		{"nil header rejected", nil, true},
		{"no content type falls back to extension", header("proof.jpeg", "", 100), false},
		{"no content type bad extension", header("proof.exe", "", 100), true},
		{"content type with charset suffix", header("proof.pdf", "application/pdf; charset=binary", 100), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReceipt(tc.fh)
			if tc.wantErr && err == nil {
				t.Fatal("expected rejection, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
		})
	}
}
