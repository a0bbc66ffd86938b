package server

import (
	"bytes"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/technomonkey-7/ugc-portfolio/internal/overlay"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmplFunc(&buf, name, data); err != nil {
		slog.Error("Failed to render template", "template", name, "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page := s.content.Page(r.Context())

	lock := &overlay.PageLock{}
	ov := overlay.New(lock)
	defer ov.Close()

	q := r.URL.Query()
	detail, ok := page.Feature.Detail(q.Get("partnership"))
	if ok {
		ov.Select(detail.ID)
		if n, err := strconv.Atoi(q.Get("image")); err == nil && n < len(detail.Images) {
			ov.Zoom(n)
		}
	}

	data := IndexPageData{
		Page:      page,
		Overlay:   overlayView(ov, detail),
		RootClass: lock.Class(),
	}

	s.render(w, "index.html", data)
}

// HandleWatch sends the visitor to a project's video. Projects without one
// answer 204 so the click has no effect.
func (s *Server) HandleWatch(w http.ResponseWriter, r *http.Request) {
	target, ok := s.content.WatchURL(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	icon := s.content.FaviconURL(r.Context())
	if strings.HasPrefix(icon, "https://") || strings.HasPrefix(icon, "http://") {
		http.Redirect(w, r, icon, http.StatusFound)
		return
	}
	s.serveFile("static/images/favicon.svg").ServeHTTP(w, r)
}

func (s *Server) serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(name)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
