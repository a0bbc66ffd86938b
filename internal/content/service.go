package content

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/technomonkey-7/ugc-portfolio/internal/imageurl"
	"github.com/technomonkey-7/ugc-portfolio/internal/models"
)

const (
	profileQuery      = `*[_type == "profile"][0]`
	metadataQuery     = `*[_type == "profile"][0]{name, headline, bio, heroImage, favicon}`
	contactQuery      = `*[_type == "profile"][0]{email}`
	footerQuery       = `*[_type == "profile"][0]{name, socialLinks}`
	showPricingQuery  = `*[_type == "profile"][0]{showPricing}`
	partnershipsQuery = `*[_type == "partnership"] | order(_createdAt asc)`
	projectsQuery     = `*[_type == "project"] | order(_createdAt desc) {..., "videoFileUrl": videoFile.asset->url}`
	pricingQuery      = `*[_type == "pricing"] | order(order asc)`
)

type Service struct {
	fetcher  Fetcher
	images   *imageurl.Builder
	defaults *Defaults
	now      func() time.Time
}

func NewService(f Fetcher, images *imageurl.Builder, defaults *Defaults) *Service {
	return &Service{
		fetcher:  f,
		images:   images,
		defaults: defaults,
		now:      time.Now,
	}
}

func noProfile(p *models.Profile) bool { return p == nil }

func emptyProfile() *models.Profile { return &models.Profile{} }

func profileResource(name, query string, def func() *models.Profile) Resource[*models.Profile] {
	return Resource[*models.Profile]{Name: name, Query: query, Empty: noProfile, Default: def}
}

func (s *Service) LoadHero(ctx context.Context) Resolution[*models.Profile] {
	return profileResource("hero", profileQuery, s.defaults.heroProfile).Load(ctx, s.fetcher)
}

func (s *Service) LoadMeta(ctx context.Context) Resolution[*models.Profile] {
	return profileResource("metadata", metadataQuery, emptyProfile).Load(ctx, s.fetcher)
}

func (s *Service) LoadNav(ctx context.Context) Resolution[*models.Profile] {
	return profileResource("navigation", showPricingQuery, emptyProfile).Load(ctx, s.fetcher)
}

func (s *Service) LoadContact(ctx context.Context) Resolution[*models.Profile] {
	return profileResource("contact", contactQuery, emptyProfile).Load(ctx, s.fetcher)
}

func (s *Service) LoadFooter(ctx context.Context) Resolution[*models.Profile] {
	return profileResource("footer", footerQuery, emptyProfile).Load(ctx, s.fetcher)
}

func (s *Service) LoadPartnerships(ctx context.Context) Resolution[[]models.Partnership] {
	return Resource[[]models.Partnership]{
		Name:    "partnerships",
		Query:   partnershipsQuery,
		Empty:   func(ps []models.Partnership) bool { return len(ps) == 0 },
		Default: s.defaults.partnerships,
	}.Load(ctx, s.fetcher)
}

func (s *Service) LoadProjects(ctx context.Context) Resolution[[]models.Project] {
	return Resource[[]models.Project]{
		Name:    "projects",
		Query:   projectsQuery,
		Empty:   func(ps []models.Project) bool { return len(ps) == 0 },
		Default: s.defaults.projects,
	}.Load(ctx, s.fetcher)
}

// LoadPricing fetches the visibility flag and the packages together. Either
// failing resolves both to defaults.
func (s *Service) LoadPricing(ctx context.Context) (Resolution[*models.Profile], Resolution[[]models.PricingPackage]) {
	return Join(ctx, s.fetcher,
		profileResource("pricing visibility", showPricingQuery, emptyProfile),
		Resource[[]models.PricingPackage]{
			Name:    "pricing",
			Query:   pricingQuery,
			Empty:   func(ps []models.PricingPackage) bool { return len(ps) == 0 },
			Default: s.defaults.pricing,
		},
	)
}

func (s *Service) Meta(ctx context.Context) Meta {
	return s.meta(s.LoadMeta(ctx).Value)
}

func (s *Service) Nav(ctx context.Context) Nav {
	return s.nav(s.LoadNav(ctx).Value)
}

func (s *Service) Hero(ctx context.Context) Hero {
	return s.hero(s.LoadHero(ctx).Value)
}

func (s *Service) Feature(ctx context.Context) Feature {
	return s.feature(s.LoadPartnerships(ctx).Value)
}

func (s *Service) Grid(ctx context.Context) Grid {
	return s.grid(s.LoadProjects(ctx).Value)
}

func (s *Service) Pricing(ctx context.Context) Pricing {
	profile, packages := s.LoadPricing(ctx)
	return s.pricing(profile.Value, packages.Value)
}

func (s *Service) Contact(ctx context.Context) Contact {
	return s.contact(s.LoadContact(ctx).Value)
}

func (s *Service) Footer(ctx context.Context) Footer {
	return s.footer(s.LoadFooter(ctx).Value)
}

// Page resolves every section concurrently. Sections share no state.
func (s *Service) Page(ctx context.Context) Page {
	var p Page

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { p.Meta = s.Meta(gctx); return nil })
	g.Go(func() error { p.Nav = s.Nav(gctx); return nil })
	g.Go(func() error { p.Hero = s.Hero(gctx); return nil })
	g.Go(func() error { p.Feature = s.Feature(gctx); return nil })
	g.Go(func() error { p.Grid = s.Grid(gctx); return nil })
	g.Go(func() error { p.Pricing = s.Pricing(gctx); return nil })
	g.Go(func() error { p.Contact = s.Contact(gctx); return nil })
	g.Go(func() error { p.Footer = s.Footer(gctx); return nil })
	_ = g.Wait()

	return p
}

// WatchURL resolves where a project tile leads. ok is false for unknown projects
// and projects without a video.
func (s *Service) WatchURL(ctx context.Context, projectID string) (string, bool) {
	for _, p := range s.LoadProjects(ctx).Value {
		if p.ID == projectID {
			return p.WatchURL()
		}
	}
	return "", false
}

// FaviconURL is the transformed profile favicon, or the static fallback path.
func (s *Service) FaviconURL(ctx context.Context) string {
	return s.Meta(ctx).Icon
}
