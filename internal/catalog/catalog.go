// Package catalog serves the studio's static site content: services,
// portfolio projects, posts, team and testimonials.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Catalog is read-only after Load and safe for concurrent use.
type Catalog struct {
	services     []Service
	projects     []Project
	posts        []Post
	team         []TeamMember
	testimonials []Testimonial

	servicesByID map[string]Service
	projectSlugs map[string]Project
}

type document struct {
	Services     []Service     `yaml:"services"`
	Projects     []Project     `yaml:"projects"`
	Posts        []Post        `yaml:"posts"`
	Team         []TeamMember  `yaml:"team"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

// Default loads the content bundled into the binary.
func Default() (*Catalog, error) {
	return Load(defaultContent)
}

func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	c := &Catalog{
		services:     doc.Services,
		projects:     doc.Projects,
		posts:        doc.Posts,
		team:         doc.Team,
		testimonials: doc.Testimonials,
		servicesByID: make(map[string]Service, len(doc.Services)),
		projectSlugs: make(map[string]Project, len(doc.Projects)),
	}

	for _, s := range doc.Services {
		if s.ID == "" || s.Title == "" {
			return nil, fmt.Errorf("%w: service needs id and title", ErrInvalidContent)
		}
		if _, dup := c.servicesByID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidContent, s.ID)
		}
		c.servicesByID[s.ID] = s
	}

	for _, p := range doc.Projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: project %q has no slug", ErrInvalidContent, p.ID)
		}
		if !p.Category.valid() {
			return nil, fmt.Errorf("%w: project %q has unknown category %q", ErrInvalidContent, p.Slug, p.Category)
		}
		if _, dup := c.projectSlugs[p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate project slug %q", ErrInvalidContent, p.Slug)
		}
		c.projectSlugs[p.Slug] = p
	}

	return c, nil
}

func (c *Catalog) Services() []Service {
	return append([]Service(nil), c.services...)
}

// ServiceTitles returns the service titles in catalog order, which is the
// order the contact form offers them.
func (c *Catalog) ServiceTitles() []string {
	out := make([]string, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s.Title)
	}
	return out
}

func (c *Catalog) ServiceByID(id string) (Service, error) {
	s, ok := c.servicesByID[id]
	if !ok {
		return Service{}, fmt.Errorf("service %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Projects returns the projects matching f in catalog order. Search is a
// case-insensitive substring match on title or client.
func (c *Catalog) Projects(f Filter) []Project {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Project, 0, len(c.projects))
	for _, p := range c.projects {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Client), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Catalog) ProjectBySlug(slug string) (Project, error) {
	p, ok := c.projectSlugs[slug]
	if !ok {
		return Project{}, fmt.Errorf("project %q: %w", slug, ErrNotFound)
	}
	return p, nil
}

func (c *Catalog) Posts() []Post {
	return append([]Post(nil), c.posts...)
}

func (c *Catalog) Team() []TeamMember {
	return append([]TeamMember(nil), c.team...)
}

func (c *Catalog) Testimonials() []Testimonial {
	return append([]Testimonial(nil), c.testimonials...)
}
