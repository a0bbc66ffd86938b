package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/technomonkey-7/ugc-portfolio/internal/models"
)

//go:embed defaults.yaml
var builtinDefaults []byte

type HeroDefaults struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Bio      string `yaml:"bio"`
	NoImage  string `yaml:"noImage"`
}

type ContactDefaults struct {
	Email string `yaml:"email"`
}

type FooterDefaults struct {
	Name  string              `yaml:"name"`
	Links []models.SocialLink `yaml:"links"`
}

type MetadataDefaults struct {
	Title       string `yaml:"title"`
	TitleSuffix string `yaml:"titleSuffix"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type PartnershipDefaults struct {
	Title            string `yaml:"title"`
	Testimonial      string `yaml:"testimonial"`
	Author           string `yaml:"author"`
	AuthorRole       string `yaml:"authorRole"`
	PlaceholderImage string `yaml:"placeholderImage"`
}

type ProjectDefaults struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

type PackageDefaults struct {
	Currency string `yaml:"currency"`
	CTAText  string `yaml:"ctaText"`
}

// Defaults are the fixtures rendered in place of missing store content, both
// whole records and individual fields.
type Defaults struct {
	Hero         HeroDefaults            `yaml:"hero"`
	Contact      ContactDefaults         `yaml:"contact"`
	Footer       FooterDefaults          `yaml:"footer"`
	Metadata     MetadataDefaults        `yaml:"metadata"`
	Navigation   []models.NavLink        `yaml:"navigation"`
	Partnerships []models.Partnership    `yaml:"partnerships"`
	Partnership  PartnershipDefaults     `yaml:"partnership"`
	Projects     []models.Project        `yaml:"projects"`
	Project      ProjectDefaults         `yaml:"project"`
	Pricing      []models.PricingPackage `yaml:"pricing"`
	Package      PackageDefaults         `yaml:"package"`
}

// LoadDefaults reads fixtures from path, or the built-in set when path is empty.
func LoadDefaults(path string) (*Defaults, error) {
	raw := builtinDefaults
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read defaults file: %w", err)
		}
		raw = b
	}
	return ParseDefaults(raw)
}

func ParseDefaults(raw []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// MustBuiltinDefaults returns the fixtures compiled into the binary.
func MustBuiltinDefaults() *Defaults {
	d, err := ParseDefaults(builtinDefaults)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Defaults) Validate() error {
	var errs []error
	if d.Hero.Name == "" {
		errs = append(errs, errors.New("defaults: hero.name is required"))
	}
	if d.Contact.Email == "" {
		errs = append(errs, errors.New("defaults: contact.email is required"))
	}
	if d.Metadata.Title == "" {
		errs = append(errs, errors.New("defaults: metadata.title is required"))
	}
	if len(d.Navigation) == 0 {
		errs = append(errs, errors.New("defaults: navigation must list at least one link"))
	}
	for i, p := range d.Pricing {
		if p.ID == "" || p.Title == "" {
			errs = append(errs, fmt.Errorf("defaults: pricing[%d] needs id and title", i))
		}
	}
	for i, p := range d.Partnerships {
		if p.ID == "" || p.Title == "" {
			errs = append(errs, fmt.Errorf("defaults: partnerships[%d] needs id and title", i))
		}
	}
	return errors.Join(errs...)
}

func (d *Defaults) heroProfile() *models.Profile {
	return &models.Profile{
		Name:     d.Hero.Name,
		Headline: d.Hero.Headline,
		Bio:      d.Hero.Bio,
	}
}

func (d *Defaults) partnerships() []models.Partnership {
	out := make([]models.Partnership, len(d.Partnerships))
	for i, p := range d.Partnerships {
		p.Images = slices.Clone(p.Images)
		out[i] = p
	}
	return out
}

func (d *Defaults) projects() []models.Project {
	return slices.Clone(d.Projects)
}

func (d *Defaults) pricing() []models.PricingPackage {
	out := make([]models.PricingPackage, len(d.Pricing))
	for i, p := range d.Pricing {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}
