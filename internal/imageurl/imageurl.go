// Package imageurl turns content-store image references into CDN URLs with
// transform parameters applied server-side.
package imageurl

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const DefaultBaseURL = "https://cdn.sanity.io"

var (
	ErrInvalidRef = errors.New("imageurl: invalid image reference")

	dimensionsRe = regexp.MustCompile(`^\d+x\d+$`)
)

type Fit string

const (
	FitClip  Fit = "clip"
	FitCrop  Fit = "crop"
	FitFill  Fit = "fill"
	FitMax   Fit = "max"
	FitMin   Fit = "min"
	FitScale Fit = "scale"
)

// Options are the transforms applied to an image. Zero values are omitted.
type Options struct {
	Width      int
	Height     int
	Fit        Fit
	AutoFormat bool
	Quality    int
}

type Builder struct {
	baseURL   string
	projectID string
	dataset   string
}

func New(projectID, dataset string) *Builder {
	return &Builder{baseURL: DefaultBaseURL, projectID: projectID, dataset: dataset}
}

// Asset is a parsed image reference of the form image-<id>-<w>x<h>-<format>.
type Asset struct {
	ID         string
	Dimensions string
	Format     string
}

func (a Asset) Size() (int, int) {
	w, h, _ := strings.Cut(a.Dimensions, "x")
	width, _ := strconv.Atoi(w)
	height, _ := strconv.Atoi(h)
	return width, height
}

func Parse(ref string) (Asset, error) {
	parts := strings.Split(ref, "-")
	if len(parts) < 4 || parts[0] != "image" {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	format := parts[len(parts)-1]
	dims := parts[len(parts)-2]
	id := strings.Join(parts[1:len(parts)-2], "-")
	if format == "" || id == "" || !dimensionsRe.MatchString(dims) {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	return Asset{ID: id, Dimensions: dims, Format: format}, nil
}

// URL builds the CDN URL for ref. Query parameters are emitted in a stable order
// so the same ref and options always give the same URL.
func (b *Builder) URL(ref string, opts Options) (string, error) {
	asset, err := Parse(ref)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%s.%s",
		b.baseURL, url.PathEscape(b.projectID), url.PathEscape(b.dataset), asset.ID, asset.Dimensions, asset.Format)

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Fit != "" {
		q.Set("fit", string(opts.Fit))
	}
	if opts.AutoFormat {
		q.Set("auto", "format")
	}
	if opts.Quality > 0 {
		q.Set("q", strconv.Itoa(opts.Quality))
	}
	if len(q) == 0 {
		return u, nil
	}
	return u + "?" + q.Encode(), nil
}
