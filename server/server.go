package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/technomonkey-7/ugc-portfolio/internal/content"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

// Content is what the site renders from.
type Content interface {
	Page(ctx context.Context) content.Page
	WatchURL(ctx context.Context, projectID string) (string, bool)
	FaviconURL(ctx context.Context) string
}

type Server struct {
	version           string
	addr              string
	server            *http.Server
	assets            http.FileSystem
	tmplFunc          ExecuteTemplateFunc
	content           Content
	requestsPerMinute int
}

func NewServer(version string, addr string, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, c Content, requestsPerMinute int) *Server {

	s := &Server{
		version:           version,
		addr:              addr,
		assets:            assets,
		tmplFunc:          tmplFunc,
		content:           c,
		requestsPerMinute: requestsPerMinute,
	}

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

// Shutdown stops accepting connections and waits for in-flight requests until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
