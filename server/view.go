package server

import (
	"fmt"
	"net/url"

	"github.com/technomonkey-7/ugc-portfolio/internal/content"
	"github.com/technomonkey-7/ugc-portfolio/internal/overlay"
)

type IndexPageData struct {
	content.Page
	Overlay   OverlayView
	RootClass string
}

type GalleryImage struct {
	URL      string
	Alt      string
	ZoomHref string
}

type OverlayView struct {
	Open              bool
	Lightbox          bool
	Detail            content.Detail
	Gallery           []GalleryImage
	ZoomedURL         string
	ZoomedAlt         string
	CloseHref         string
	BackdropHref      string
	LightboxCloseHref string
}

// href is the page URL that renders the overlay in o's state.
func href(o *overlay.Overlay) string {
	switch o.State() {
	case overlay.Open:
		return "/?partnership=" + url.QueryEscape(o.Selected())
	case overlay.Lightbox:
		return fmt.Sprintf("/?partnership=%s&image=%d", url.QueryEscape(o.Selected()), o.Image())
	default:
		return "/#partnerships"
	}
}

// after returns the URL of the state reached from o by applying transition.
// o itself is left untouched.
func after(o *overlay.Overlay, transition func(*overlay.Overlay)) string {
	next := overlay.New(&overlay.PageLock{})
	next.Select(o.Selected())
	if o.State() == overlay.Lightbox {
		next.Zoom(o.Image())
	}
	transition(next)
	return href(next)
}

func overlayView(o *overlay.Overlay, d content.Detail) OverlayView {
	if o.State() == overlay.Closed {
		return OverlayView{}
	}

	v := OverlayView{
		Open:         true,
		Lightbox:     o.State() == overlay.Lightbox,
		Detail:       d,
		CloseHref:    after(o, (*overlay.Overlay).Close),
		BackdropHref: after(o, (*overlay.Overlay).Backdrop),
	}
	for i, img := range d.Images {
		v.Gallery = append(v.Gallery, GalleryImage{
			URL:      img,
			Alt:      fmt.Sprintf("%s - Gallery %d", d.Title, i+1),
			ZoomHref: after(o, func(n *overlay.Overlay) { n.Zoom(i) }),
		})
	}
	if v.Lightbox {
		v.ZoomedURL = d.Images[o.Image()]
		v.ZoomedAlt = v.Gallery[o.Image()].Alt
		v.LightboxCloseHref = after(o, (*overlay.Overlay).Unzoom)
	}
	return v
}
