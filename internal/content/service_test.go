package content

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEmptyStoreAndFailingStoreRenderTheSame(t *testing.T) {
	empty := newTestService(t, newFakeFetcher()).Page(context.Background())
	failing := newTestService(t, failingFetcher{}).Page(context.Background())

	if diff := cmp.Diff(empty, failing); diff != "" {
		t.Errorf("failing store page differs from empty store page (-empty +failing):\n%s", diff)
	}
}

func TestDefaultPage(t *testing.T) {
	p := newTestService(t, newFakeFetcher()).Page(context.Background())

	require.Equal(t, "Engineering & Creativity | UGC Portfolio", p.Meta.Title)
	require.Equal(t, "/favicon.ico", p.Meta.Icon)
	require.Empty(t, p.Meta.OGImage)

	require.Equal(t, "Arda", p.Hero.FirstName)
	require.Equal(t, "Cankaya", p.Hero.LastName)
	require.Contains(t, string(p.Hero.Headline), "Politecnico di Torino")
	require.Empty(t, p.Hero.ImageURL)
	require.Equal(t, "No Image", p.Hero.NoImage)
	require.Empty(t, p.Hero.SocialLinks)

	require.Len(t, p.Feature.Cards, 1)
	require.Equal(t, "EDISU Piemonte", p.Feature.Cards[0].Title)

	require.True(t, p.Grid.Loading())

	require.True(t, p.Pricing.Visible)
	require.Len(t, p.Pricing.Packages, 2)
	require.Equal(t, "Starter Package", p.Pricing.Packages[0].Title)
	require.Equal(t, "150", p.Pricing.Packages[0].Price)
	require.True(t, p.Pricing.Packages[1].Popular)

	require.Len(t, p.Nav.Links, 3)

	require.Equal(t, "mailto:hello@ardacankaya.com", p.Contact.Mailto)

	require.Equal(t, "ARDA CANKAYA", p.Footer.Name)
	require.Equal(t, 2025, p.Footer.Year)
	require.Len(t, p.Footer.Links, 2)
}

func TestPricingVisibility(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		visible bool
	}{
		{name: "absent", profile: `{}`, visible: true},
		{name: "no profile", profile: `null`, visible: true},
		{name: "false", profile: `{"showPricing":false}`, visible: false},
		{name: "true", profile: `{"showPricing":true}`, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeFetcher()
			f.results[showPricingQuery] = tt.profile
			s := newTestService(t, f)

			require.Equal(t, tt.visible, s.Pricing(context.Background()).Visible)

			var hasPricingLink bool
			for _, l := range s.Nav(context.Background()).Links {
				if l.Key == "pricing" {
					hasPricingLink = true
				}
			}
			require.Equal(t, tt.visible, hasPricingLink)
		})
	}
}

func TestPricingVisibleWhenJoinFails(t *testing.T) {
	f := newFakeFetcher()
	f.results[showPricingQuery] = `{"showPricing":false}`
	f.errs[pricingQuery] = errStoreDown
	s := newTestService(t, f)

	p := s.Pricing(context.Background())

	require.True(t, p.Visible)
	require.Len(t, p.Packages, 2)
	require.Equal(t, "default-1", p.Packages[0].ID)
}

func TestPricingSortedByOrder(t *testing.T) {
	f := newFakeFetcher()
	f.results[pricingQuery] = `[
		{"_id":"c","title":"C","price":30,"order":2},
		{"_id":"none","title":"None","price":1},
		{"_id":"a","title":"A","price":10,"order":1},
		{"_id":"b","title":"B","price":20,"order":1},
		{"_id":"z","title":"Z","price":19.99,"order":0}
	]`
	s := newTestService(t, f)

	p := s.Pricing(context.Background())

	var ids []string
	for _, pkg := range p.Packages {
		ids = append(ids, pkg.ID)
	}
	require.Equal(t, []string{"z", "a", "b", "c", "none"}, ids)
	require.Equal(t, "19.99", p.Packages[0].Price)
}

func TestPricingFieldDefaults(t *testing.T) {
	f := newFakeFetcher()
	f.results[pricingQuery] = `[{"_id":"p","title":"Pro","price":99,"features":["One"]}]`
	s := newTestService(t, f)

	pkg := s.Pricing(context.Background()).Packages[0]

	require.Equal(t, "€", pkg.Currency)
	require.Equal(t, "Get Started", pkg.CTA)
	require.False(t, pkg.Popular)
	require.Equal(t, []string{"One"}, pkg.Features)
}

func TestPartnershipWithoutImages(t *testing.T) {
	f := newFakeFetcher()
	f.results[partnershipsQuery] = `[{"_id":"edisu","title":"EDISU Piemonte","role":"Brand Ambassador","images":[]}]`
	s := newTestService(t, f)

	feature := s.Feature(context.Background())

	require.Len(t, feature.Cards, 1)
	card := feature.Cards[0]
	require.Equal(t, "EDISU Piemonte", card.Title)
	require.Equal(t, "Brand Ambassador", card.Role)
	require.Equal(t, "E", card.Initial)
	require.Empty(t, card.ImageURL)
	require.Equal(t, "EDISU Piemonte Preview", card.Placeholder)
	require.Equal(t, "/?partnership=edisu", card.DetailHref)

	detail, ok := feature.Detail("edisu")
	require.True(t, ok)
	require.Equal(t, "Professional collaboration.", detail.Quote)
	require.Equal(t, "Partner", detail.Author)
	require.Equal(t, "Official Recognition", detail.AuthorRole)
	require.Equal(t, []string{"/static/images/placeholder-website.svg"}, detail.Images)

	_, ok = feature.Detail("unknown")
	require.False(t, ok)
}

func TestPartnershipWithImages(t *testing.T) {
	f := newFakeFetcher()
	f.results[partnershipsQuery] = `[{
		"_id":"brand",
		"title":"Brand",
		"role":"Creator",
		"websiteUrl":"https://brand.example",
		"testimonial":"Great work",
		"testimonialAuthor":"CMO",
		"images":[
			{"asset":{"_ref":"image-one-1000x800-jpg"}},
			{"asset":{"_ref":"broken"}},
			{"asset":{"_ref":"image-two-800x800-png"}}
		]
	}]`
	s := newTestService(t, f)

	feature := s.Feature(context.Background())

	require.Equal(t, "https://cdn.sanity.io/images/abc123/production/one-1000x800.jpg?auto=format&w=1000", feature.Cards[0].ImageURL)

	detail, _ := feature.Detail("brand")
	require.Equal(t, []string{
		"https://cdn.sanity.io/images/abc123/production/one-1000x800.jpg?auto=format",
		"https://cdn.sanity.io/images/abc123/production/two-800x800.png?auto=format",
	}, detail.Images)
	require.Equal(t, "Great work", detail.Quote)
	require.Equal(t, "CMO", detail.Author)
	require.Equal(t, "https://brand.example", detail.WebsiteURL)
}

func TestPartnershipsKeepStoreOrder(t *testing.T) {
	f := newFakeFetcher()
	f.results[partnershipsQuery] = `[{"_id":"1","title":"First"},{"_id":"2","title":"Second"}]`
	s := newTestService(t, f)

	cards := s.Feature(context.Background()).Cards
	require.Equal(t, "First", cards[0].Title)
	require.Equal(t, "Second", cards[1].Title)
}

func TestGrid(t *testing.T) {
	f := newFakeFetcher()
	f.results[projectsQuery] = `[
		{"_id":"both","title":"Both","category":"ugc","videoUrl":"https://tiktok.com/v/1","videoFileUrl":"https://cdn.sanity.io/files/abc123/production/f.mp4",
		 "thumbnail":{"asset":{"_ref":"image-thumb-1080x1920-jpg"},"alt":"Thumb alt"},"metrics":"1.2M Views"},
		{"_id":"link","title":"Link","category":"viral","videoUrl":"https://tiktok.com/v/2"},
		{"_id":"none"}
	]`
	s := newTestService(t, f)

	g := s.Grid(context.Background())

	require.False(t, g.Loading())
	require.Len(t, g.Tiles, 3)

	require.Equal(t, "https://cdn.sanity.io/files/abc123/production/f.mp4", g.Tiles[0].WatchURL)
	require.Equal(t, "https://cdn.sanity.io/images/abc123/production/thumb-1080x1920.jpg?auto=format&fit=crop&h=1066&q=85&w=600", g.Tiles[0].ThumbnailURL)
	require.Equal(t, "Thumb alt", g.Tiles[0].ThumbnailAlt)
	require.Equal(t, "UGC Video", g.Tiles[0].CategoryLabel)
	require.Equal(t, "1.2M Views", g.Tiles[0].Metrics)

	require.Equal(t, "https://tiktok.com/v/2", g.Tiles[1].WatchURL)
	require.Equal(t, "Link", g.Tiles[1].ThumbnailAlt)

	require.Empty(t, g.Tiles[2].WatchURL)
	require.Equal(t, "Untitled", g.Tiles[2].Title)
	require.Equal(t, "other", g.Tiles[2].Category)
}

func TestWatchURL(t *testing.T) {
	f := newFakeFetcher()
	f.results[projectsQuery] = `[{"_id":"link","videoUrl":"https://tiktok.com/v/2"},{"_id":"none"}]`
	s := newTestService(t, f)

	u, ok := s.WatchURL(context.Background(), "link")
	require.True(t, ok)
	require.Equal(t, "https://tiktok.com/v/2", u)

	_, ok = s.WatchURL(context.Background(), "none")
	require.False(t, ok)

	_, ok = s.WatchURL(context.Background(), "missing")
	require.False(t, ok)
}

func TestHeroFromProfile(t *testing.T) {
	f := newFakeFetcher()
	f.results[profileQuery] = `{
		"name":"Jane Q Public",
		"headline":"UGC Creator <br/>& Engineer",
		"heroImage":{"asset":{"_ref":"image-hero-2000x3000-jpg"}},
		"socialLinks":[{"_key":"k1","platform":"TikTok","url":"https://tiktok.com/@jane"},{"_key":"k2","platform":"Broken"}]
	}`
	s := newTestService(t, f)

	h := s.Hero(context.Background())

	require.Equal(t, "Jane", h.FirstName)
	require.Equal(t, "Q Public", h.LastName)
	require.Contains(t, string(h.Headline), "<br/>")
	require.Contains(t, string(h.Bio), "Translating technical precision")
	require.Equal(t, "https://cdn.sanity.io/images/abc123/production/hero-2000x3000.jpg?q=100&w=800", h.ImageURL)
	require.Equal(t, "Jane Q Public", h.ImageAlt)
	require.Len(t, h.SocialLinks, 1)
	require.Equal(t, "TikTok", h.SocialLinks[0].Platform)
}

func TestMetaFromProfile(t *testing.T) {
	f := newFakeFetcher()
	f.results[metadataQuery] = `{
		"name":"Jane Public",
		"headline":"Creator",
		"heroImage":{"asset":{"_ref":"image-hero-2000x3000-jpg"}},
		"favicon":{"asset":{"_ref":"image-icon-512x512-png"}}
	}`
	s := newTestService(t, f)

	m := s.Meta(context.Background())

	require.Equal(t, "Jane Public | UGC Portfolio", m.Title)
	require.Equal(t, "Creator", m.Description)
	require.Equal(t, "https://cdn.sanity.io/images/abc123/production/hero-2000x3000.jpg?h=630&w=1200", m.OGImage)
	require.Equal(t, "https://cdn.sanity.io/images/abc123/production/icon-512x512.png?auto=format&fit=max&h=64&q=80&w=64", m.Icon)
	require.Equal(t, m.Icon, s.FaviconURL(context.Background()))
}

func TestFooterAndContactFromProfile(t *testing.T) {
	f := newFakeFetcher()
	f.results[footerQuery] = `{"name":"Jane Public","socialLinks":[{"platform":"Instagram","url":"https://instagram.com/jane"}]}`
	f.results[contactQuery] = `{"email":"jane@example.com"}`
	s := newTestService(t, f)

	footer := s.Footer(context.Background())
	require.Equal(t, "JANE PUBLIC", footer.Name)
	require.Equal(t, "https://instagram.com/jane", footer.Links[0].URL)

	contact := s.Contact(context.Background())
	require.Equal(t, "jane@example.com", contact.Email)
	require.Equal(t, "mailto:jane@example.com", contact.Mailto)
}

func TestReport(t *testing.T) {
	f := newFakeFetcher()
	f.results[partnershipsQuery] = `[{"_id":"1","title":"First"}]`
	f.errs[projectsQuery] = errStoreDown
	s := newTestService(t, f)

	sections := s.Report(context.Background())

	sources := make(map[string]string)
	for _, sec := range sections {
		sources[sec.Section] = sec.Source
	}
	require.Equal(t, "remote", sources["partnerships"])
	require.Equal(t, "default (error)", sources["projects"])
	require.Equal(t, "default (empty)", sources["hero"])

	var b strings.Builder
	require.NoError(t, WriteReport(&b, sections))
	require.Contains(t, b.String(), "section: partnerships")
	require.Contains(t, b.String(), "connection refused")
}
