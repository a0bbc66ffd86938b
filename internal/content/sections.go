package content

import (
	"html/template"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/technomonkey-7/ugc-portfolio/internal/imageurl"
	"github.com/technomonkey-7/ugc-portfolio/internal/models"
	"github.com/technomonkey-7/ugc-portfolio/internal/richtext"
)

// Image transforms per placement.
var (
	heroImage      = imageurl.Options{Width: 800, Quality: 100}
	ogImage        = imageurl.Options{Width: 1200, Height: 630}
	faviconImage   = imageurl.Options{Width: 64, Height: 64, Fit: imageurl.FitMax, AutoFormat: true, Quality: 80}
	cardImage      = imageurl.Options{Width: 1000, AutoFormat: true}
	galleryImage   = imageurl.Options{AutoFormat: true}
	thumbnailImage = imageurl.Options{Width: 600, Height: 1066, Fit: imageurl.FitCrop, AutoFormat: true, Quality: 85}
)

type Meta struct {
	Title       string
	Description string
	OGImage     string
	Icon        string
}

type Nav struct {
	Links []models.NavLink
}

type Hero struct {
	FirstName   string
	LastName    string
	Headline    template.HTML
	Bio         template.HTML
	ImageURL    string
	ImageAlt    string
	NoImage     string
	SocialLinks []models.SocialLink
}

type PartnershipCard struct {
	ID          string
	Title       string
	Initial     string
	Role        string
	Description template.HTML
	// ImageURL is empty when the partnership has no images; Placeholder is shown instead.
	ImageURL    string
	Placeholder string
	DetailHref  string
}

// Detail is what the overlay shows for one partnership.
type Detail struct {
	ID          string
	Title       string
	Description template.HTML
	WebsiteURL  string
	Quote       string
	Author      string
	AuthorRole  string
	Images      []string
}

type Feature struct {
	Cards   []PartnershipCard
	Details []Detail
}

func (f Feature) Detail(id string) (Detail, bool) {
	for _, d := range f.Details {
		if d.ID == id {
			return d, true
		}
	}
	return Detail{}, false
}

type ProjectTile struct {
	ID            string
	Title         string
	Category      string
	CategoryLabel string
	ThumbnailURL  string
	ThumbnailAlt  string
	Metrics       string
	// WatchURL is empty when the project has no video; the tile is then inert.
	WatchURL string
}

type Grid struct {
	Tiles []ProjectTile
}

// Loading reports whether the grid shows its placeholder instead of tiles.
func (g Grid) Loading() bool {
	return len(g.Tiles) == 0
}

type PackageCard struct {
	ID          string
	Title       string
	Description string
	Price       string
	Currency    string
	Frequency   string
	Features    []string
	Popular     bool
	CTA         string
}

type Pricing struct {
	Visible  bool
	Packages []PackageCard
}

type Contact struct {
	Email  string
	Mailto string
}

type Footer struct {
	Name  string
	Year  int
	Links []models.SocialLink
}

// Page is every section of the home page, resolved.
type Page struct {
	Meta    Meta
	Nav     Nav
	Hero    Hero
	Feature Feature
	Grid    Grid
	Pricing Pricing
	Contact Contact
	Footer  Footer
}

func (s *Service) image(ref *models.ImageRef, opts imageurl.Options) string {
	if ref.Ref() == "" {
		return ""
	}
	u, err := s.images.URL(ref.Ref(), opts)
	if err != nil {
		slog.Warn("Skipping image", slog.String("ref", ref.Ref()), slog.Any("error", err))
		return ""
	}
	return u
}

func (s *Service) meta(p *models.Profile) Meta {
	d := s.defaults.Metadata
	m := Meta{Title: d.Title, Description: d.Description, Icon: d.Icon}
	if p.Name != "" {
		m.Title = p.Name + d.TitleSuffix
	}
	if p.Headline != "" {
		m.Description = p.Headline
	}
	m.OGImage = s.image(p.HeroImage, ogImage)
	if icon := s.image(p.Favicon, faviconImage); icon != "" {
		m.Icon = icon
	}
	return m
}

func (s *Service) nav(p *models.Profile) Nav {
	show := Visible(p.ShowPricing)
	links := make([]models.NavLink, 0, len(s.defaults.Navigation))
	for _, l := range s.defaults.Navigation {
		if l.Key == "pricing" && !show {
			continue
		}
		links = append(links, l)
	}
	return Nav{Links: links}
}

func (s *Service) hero(p *models.Profile) Hero {
	d := s.defaults.Hero

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = d.Name
	}
	first, last, _ := strings.Cut(name, " ")

	headline := p.Headline
	if headline == "" {
		headline = d.Headline
	}
	bio := p.Bio
	if bio == "" {
		bio = d.Bio
	}

	return Hero{
		FirstName:   first,
		LastName:    strings.TrimSpace(last),
		Headline:    richtext.Inline(headline),
		Bio:         richtext.Markdown(bio),
		ImageURL:    s.image(p.HeroImage, heroImage),
		ImageAlt:    name,
		NoImage:     d.NoImage,
		SocialLinks: socialLinks(p.SocialLinks),
	}
}

func socialLinks(in []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(in))
	for _, l := range in {
		if l.URL == "" || l.Platform == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *Service) feature(ps []models.Partnership) Feature {
	d := s.defaults.Partnership
	f := Feature{
		Cards:   make([]PartnershipCard, 0, len(ps)),
		Details: make([]Detail, 0, len(ps)),
	}

	for _, p := range ps {
		title := p.Title
		if title == "" {
			title = d.Title
		}
		initial, _ := utf8.DecodeRuneInString(title)
		description := richtext.Markdown(p.Description)

		card := PartnershipCard{
			ID:          p.ID,
			Title:       title,
			Initial:     strings.ToUpper(string(initial)),
			Role:        p.Role,
			Description: description,
			Placeholder: title + " Preview",
			DetailHref:  "/?partnership=" + url.QueryEscape(p.ID),
		}
		if len(p.Images) > 0 {
			card.ImageURL = s.image(&p.Images[0], cardImage)
		}
		f.Cards = append(f.Cards, card)

		detail := Detail{
			ID:          p.ID,
			Title:       title,
			Description: description,
			WebsiteURL:  p.WebsiteURL,
			Quote:       p.Testimonial,
			Author:      p.TestimonialAuthor,
			AuthorRole:  d.AuthorRole,
		}
		if detail.Quote == "" {
			detail.Quote = d.Testimonial
		}
		if detail.Author == "" {
			detail.Author = d.Author
		}
		for i := range p.Images {
			if u := s.image(&p.Images[i], galleryImage); u != "" {
				detail.Images = append(detail.Images, u)
			}
		}
		if len(detail.Images) == 0 {
			detail.Images = []string{d.PlaceholderImage}
		}
		f.Details = append(f.Details, detail)
	}
	return f
}

func (s *Service) grid(ps []models.Project) Grid {
	d := s.defaults.Project
	g := Grid{Tiles: make([]ProjectTile, 0, len(ps))}

	for _, p := range ps {
		if p.Title == "" {
			p.Title = d.Title
		}
		if p.Category == "" {
			p.Category = d.Category
		}
		watch, _ := p.WatchURL()

		alt := p.Title
		if p.Thumbnail != nil && p.Thumbnail.Alt != "" {
			alt = p.Thumbnail.Alt
		}

		g.Tiles = append(g.Tiles, ProjectTile{
			ID:            p.ID,
			Title:         p.Title,
			Category:      p.Category,
			CategoryLabel: p.CategoryLabel(),
			ThumbnailURL:  s.image(p.Thumbnail, thumbnailImage),
			ThumbnailAlt:  alt,
			Metrics:       p.Metrics,
			WatchURL:      watch,
		})
	}
	return g
}

// sortPackages orders packages by their order field, ascending. Packages without
// one go last; ties keep the order the store returned.
func sortPackages(ps []models.PricingPackage) {
	slices.SortStableFunc(ps, func(a, b models.PricingPackage) int {
		switch {
		case a.Order == nil && b.Order == nil:
			return 0
		case a.Order == nil:
			return 1
		case b.Order == nil:
			return -1
		case *a.Order < *b.Order:
			return -1
		case *a.Order > *b.Order:
			return 1
		default:
			return 0
		}
	})
}

func (s *Service) pricing(p *models.Profile, ps []models.PricingPackage) Pricing {
	d := s.defaults.Package
	ps = slices.Clone(ps)
	sortPackages(ps)

	out := Pricing{
		Visible:  Visible(p.ShowPricing),
		Packages: make([]PackageCard, 0, len(ps)),
	}
	for _, pkg := range ps {
		card := PackageCard{
			ID:          pkg.ID,
			Title:       pkg.Title,
			Description: pkg.Description,
			Price:       strconv.FormatFloat(pkg.Price, 'f', -1, 64),
			Currency:    pkg.Currency,
			Frequency:   pkg.Frequency,
			Features:    slices.Clone(pkg.Features),
			Popular:     pkg.IsPopular,
			CTA:         pkg.CTAText,
		}
		if card.Currency == "" {
			card.Currency = d.Currency
		}
		if card.CTA == "" {
			card.CTA = d.CTAText
		}
		out.Packages = append(out.Packages, card)
	}
	return out
}

func (s *Service) contact(p *models.Profile) Contact {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		email = s.defaults.Contact.Email
	}
	return Contact{Email: email, Mailto: "mailto:" + email}
}

func (s *Service) footer(p *models.Profile) Footer {
	f := Footer{
		Name:  s.defaults.Footer.Name,
		Year:  s.now().Year(),
		Links: socialLinks(p.SocialLinks),
	}
	if p.Name != "" {
		f.Name = strings.ToUpper(p.Name)
	}
	if len(f.Links) == 0 {
		f.Links = slices.Clone(s.defaults.Footer.Links)
	}
	return f
}
