package directus

import (
	"fmt"
	"net/url"
	"strconv"
)

// TransformOptions are the asset transformations understood by the
// Directus /assets endpoint. Zero values are omitted from the URL.
type TransformOptions struct {
	Width   int
	Height  int
	Quality int
	Format  string // webp, jpg, png, auto
	Fit     string // cover, contain, inside, outside
}

// AssetResolver builds transformation URLs for CMS-hosted files. Pure and
// idempotent: the same inputs always produce the same URL, so downstream
// image layers can cache by URL.
type AssetResolver struct {
	baseURL string
}

func NewAssetResolver(baseURL string) *AssetResolver {
	return &AssetResolver{baseURL: baseURL}
}

// FileURL returns the full asset URL for a file id with explicit
// transformations, or "" when no id is given.
func (r *AssetResolver) FileURL(fileID string, opts TransformOptions) string {
	if fileID == "" {
		return ""
	}

	params := url.Values{}
	if opts.Width > 0 {
		params.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		params.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Quality > 0 {
		params.Set("quality", strconv.Itoa(opts.Quality))
	}
	if opts.Format != "" {
		params.Set("format", opts.Format)
	}
	if opts.Fit != "" {
		params.Set("fit", opts.Fit)
	}

	endpoint := fmt.Sprintf("%s/assets/%s", r.baseURL, fileID)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}

// ImageURL is the defaulted entry point used by page composition:
// quality 75, auto format, cover fit, optional width.
func (r *AssetResolver) ImageURL(fileID string, width int) string {
	return r.FileURL(fileID, TransformOptions{
		Width:   width,
		Quality: 75,
		Format:  "auto",
		Fit:     "cover",
	})
}
