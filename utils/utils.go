package utils

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/princinho/estudiobackend/models"
	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

var ErrNegativePrice = errors.New("price must not be negative")

func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CleanFolder slugs every segment of a destination folder hint, dropping
// empty and dot segments. An empty result becomes "uploads".
func CleanFolder(folder string) string {
	parts := strings.Split(strings.ReplaceAll(folder, "\\", "/"), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := GenerateSlug(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return "uploads"
	}
	return strings.Join(out, "/")
}

// SplitFilename returns the slugged base name and the lower-cased extension.
func SplitFilename(filename string) (string, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := GenerateSlug(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	return base, ext
}

// DetectMIME trusts the declared type unless it is empty or generic, in
// which case the content is sniffed. Parameters such as charset are dropped.
func DetectMIME(declared string, r io.Reader) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	ct = m.String()
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct, nil
}

// MediaKindFor maps a MIME type to the media kind stored next to a URL.
func MediaKindFor(contentType string) models.MediaKind {
	if strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return models.MediaVideo
	}
	return models.MediaImage
}

func IsMedia(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/")
}

// ParseIntDefault reads an integer setting such as SMTP_PORT; blank or
// malformed values give def.
func ParseIntDefault(v string, def int) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ParsePrice accepts "12", "12.5" and the comma decimal "12,5". Negative
// values are rejected.
func ParsePrice(v string) (float64, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	if f < 0 {
		return 0, ErrNegativePrice
	}
	return f, nil
}
