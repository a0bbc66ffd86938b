package models

import "strings"

// ImageRef points at an image asset in the content store. It is resolved into a URL
// by the image builder and never stored as a final URL.
type ImageRef struct {
	Asset AssetRef `json:"asset" yaml:"asset"`
	Alt   string   `json:"alt,omitempty" yaml:"alt,omitempty"`
}

type AssetRef struct {
	Ref string `json:"_ref" yaml:"ref"`
}

func (i *ImageRef) Ref() string {
	if i == nil {
		return ""
	}
	return i.Asset.Ref
}

type SocialLink struct {
	Key      string `json:"_key,omitempty" yaml:"key,omitempty"`
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

type Profile struct {
	Name        string       `json:"name" yaml:"name"`
	Email       string       `json:"email" yaml:"email"`
	Headline    string       `json:"headline" yaml:"headline"`
	Bio         string       `json:"bio" yaml:"bio"`
	HeroImage   *ImageRef    `json:"heroImage,omitempty" yaml:"heroImage,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	ShowPricing *bool        `json:"showPricing,omitempty" yaml:"showPricing,omitempty"`
	Favicon     *ImageRef    `json:"favicon,omitempty" yaml:"favicon,omitempty"`
}

type Partnership struct {
	ID                string     `json:"_id" yaml:"id"`
	Title             string     `json:"title" yaml:"title"`
	Role              string     `json:"role" yaml:"role"`
	Description       string     `json:"description" yaml:"description"`
	WebsiteURL        string     `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty"`
	Testimonial       string     `json:"testimonial" yaml:"testimonial"`
	TestimonialAuthor string     `json:"testimonialAuthor" yaml:"testimonialAuthor"`
	Images            []ImageRef `json:"images" yaml:"images"`
}

const (
	CategoryUGC        = "ugc"
	CategoryAmbassador = "ambassador"
	CategoryViral      = "viral"
	CategoryOther      = "other"
)

var categoryLabels = map[string]string{
	CategoryUGC:        "UGC Video",
	CategoryAmbassador: "Brand Ambassadorship",
	CategoryViral:      "Viral Trend",
	CategoryOther:      "Other",
}

type Slug struct {
	Current string `json:"current" yaml:"current"`
}

type Project struct {
	ID           string    `json:"_id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Slug         Slug      `json:"slug" yaml:"slug"`
	Category     string    `json:"category" yaml:"category"`
	VideoURL     string    `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	VideoFileURL string    `json:"videoFileUrl,omitempty" yaml:"videoFileUrl,omitempty"`
	Thumbnail    *ImageRef `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Metrics      string    `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// WatchURL returns the uploaded video file when there is one, otherwise the
// linked video. ok is false when the project has neither.
func (p Project) WatchURL() (string, bool) {
	if u := strings.TrimSpace(p.VideoFileURL); u != "" {
		return u, true
	}
	if u := strings.TrimSpace(p.VideoURL); u != "" {
		return u, true
	}
	return "", false
}

// CategoryLabel is the human label for the project's category. Unknown values are
// shown as stored.
func (p Project) CategoryLabel() string {
	if label, ok := categoryLabels[p.Category]; ok {
		return label
	}
	return p.Category
}

type PricingPackage struct {
	ID          string   `json:"_id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Currency    string   `json:"currency" yaml:"currency"`
	Frequency   string   `json:"frequency" yaml:"frequency"`
	Features    []string `json:"features" yaml:"features"`
	IsPopular   bool     `json:"isPopular" yaml:"isPopular"`
	CTAText     string   `json:"ctaText" yaml:"ctaText"`
	Order       *float64 `json:"order,omitempty" yaml:"order,omitempty"`
}

type NavLink struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
	Key   string `yaml:"key,omitempty"`
}
