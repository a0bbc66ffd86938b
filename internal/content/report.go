package content

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

// SectionReport describes how one section resolved.
type SectionReport struct {
	Section string `yaml:"section"`
	Source  string `yaml:"source"`
	Error   string `yaml:"error,omitempty"`
	Value   any    `yaml:"value"`
}

func section[T any](name string, r Resolution[T]) SectionReport {
	sr := SectionReport{Section: name, Source: r.Source.String(), Value: r.Value}
	if r.Err != nil {
		sr.Error = r.Err.Error()
	}
	return sr
}

// Report resolves every section once, sequentially, and records where each value
// came from. Unlike the rendered page it tells an empty store apart from an
// unreachable one.
func (s *Service) Report(ctx context.Context) []SectionReport {
	visibility, packages := s.LoadPricing(ctx)
	return []SectionReport{
		section("hero", s.LoadHero(ctx)),
		section("metadata", s.LoadMeta(ctx)),
		section("navigation", s.LoadNav(ctx)),
		section("partnerships", s.LoadPartnerships(ctx)),
		section("projects", s.LoadProjects(ctx)),
		section("pricing visibility", visibility),
		section("pricing", packages),
		section("contact", s.LoadContact(ctx)),
		section("footer", s.LoadFooter(ctx)),
	}
}

func WriteReport(w io.Writer, sections []SectionReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sections); err != nil {
		return err
	}
	return enc.Close()
}
