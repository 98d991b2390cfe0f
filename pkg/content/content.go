// Package content holds the static copy of the site, parsed from an embedded YAML file.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

type Site struct {
	Brand    Brand    `yaml:"brand"`
	Hero     Hero     `yaml:"hero"`
	Services Services `yaml:"services"`
	WhyUs    WhyUs    `yaml:"why_us"`
	Process  Process  `yaml:"process"`
	FAQs     FAQs     `yaml:"faqs"`
	Contact  Contact  `yaml:"contact"`
}

type Brand struct {
	Name              string `yaml:"name"`
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	SocialDescription string `yaml:"social_description"`
	About             string `yaml:"about"`
	Address           string `yaml:"address"`
	Phone             string `yaml:"phone"`
	Email             string `yaml:"email"`
	ChatText          string `yaml:"chat_text"`
	Socials           []Link `yaml:"socials"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Hero struct {
	Headline  string   `yaml:"headline"`
	Lead      string   `yaml:"lead"`
	CTA       string   `yaml:"cta"`
	ChatLabel string   `yaml:"chat_label"`
	ChatText  string   `yaml:"chat_text"`
	Words     []string `yaml:"words"`
	Images    []string `yaml:"images"`
}

// Card is one entry of a service or differentiator grid.
type Card struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Image string `yaml:"image"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Services struct {
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Items   []Card `yaml:"items"`
}

type WhyUs struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Items   []Card `yaml:"items"`
	Stats   []Stat `yaml:"stats"`
}

type Step struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Process struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Image   string `yaml:"image"`
	Steps   []Step `yaml:"steps"`
}

type QA struct {
	Q string `yaml:"q"`
	A string `yaml:"a"`
}

type FAQs struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Items   []QA   `yaml:"items"`
}

type Contact struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Privacy string `yaml:"privacy"`
}

// Load parses the embedded site copy.
func Load() (*Site, error) {
	return Parse(raw)
}

// Parse decodes site copy from YAML and checks that every list the page iterates is filled.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return &s, nil
}

func (s *Site) validate() error {
	var errs []error
	check := func(name string, n int) {
		if n == 0 {
			errs = append(errs, fmt.Errorf("%s is empty", name))
		}
	}
	check("brand.name", len(s.Brand.Name))
	check("hero.words", len(s.Hero.Words))
	check("hero.images", len(s.Hero.Images))
	check("services.items", len(s.Services.Items))
	check("why_us.items", len(s.WhyUs.Items))
	check("process.steps", len(s.Process.Steps))
	check("faqs.items", len(s.FAQs.Items))
	return errors.Join(errs...)
}
