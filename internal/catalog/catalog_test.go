package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func slugs(ps []Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Slug)
	}
	return out
}

func TestDefault_Loads(t *testing.T) {
	c := mustDefault(t)

	assert.Len(t, c.Services(), 5)
	assert.Len(t, c.Projects(Filter{}), 8)
	assert.Len(t, c.Posts(), 3)
	assert.Len(t, c.Team(), 2)
	assert.Len(t, c.Testimonials(), 2)
}

func TestServiceTitles_Order(t *testing.T) {
	c := mustDefault(t)
	assert.Equal(t, []string{
		"Web Development",
		"Mobile Apps",
		"Shopify & E-commerce",
		"Digital Transformation",
		"Cloud & DevOps",
	}, c.ServiceTitles())
}

func TestServiceByID(t *testing.T) {
	c := mustDefault(t)

	s, err := c.ServiceByID("devops")
	require.NoError(t, err)
	assert.Equal(t, "Cloud & DevOps", s.Title)
	assert.Equal(t, IconCloud, s.Icon)
	assert.Equal(t, "$3k - $10k", s.PriceRange)

	_, err = c.ServiceByID("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProjects_Filter(t *testing.T) {
	c := mustDefault(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{Category: CategoryAll}, []string{"fintech-dashboard", "urban-eats", "eco-market", "corp-landing", "med-portal", "fashion-app", "crypto-exchange", "estate-crm"}},
		{"portal", Filter{Category: CategoryPortal}, []string{"fintech-dashboard", "med-portal", "estate-crm"}},
		{"ecommerce", Filter{Category: CategoryEcommerce}, []string{"eco-market"}},
		{"search title", Filter{Search: "EXCHANGE"}, []string{"crypto-exchange"}},
		{"search client", Filter{Search: "greenlife"}, []string{"eco-market"}},
		{"category and search", Filter{Category: CategoryApp, Search: "vogue"}, []string{"fashion-app"}},
		{"no match", Filter{Category: CategoryWebsite, Search: "urban"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugs(c.Projects(tt.filter)))
		})
	}
}

func TestProjectBySlug(t *testing.T) {
	c := mustDefault(t)

	p, err := c.ProjectBySlug("urban-eats")
	require.NoError(t, err)
	assert.Equal(t, "Urban Eats Delivery", p.Title)
	assert.Equal(t, []string{"Flutter", "Firebase", "Google Maps API"}, p.TechStack)

	_, err = c.ProjectBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, IconGlobe, IconFor("Globe"))
	assert.Equal(t, IconZap, IconFor("Zap"))
	assert.Equal(t, FallbackIcon, IconFor("Rocket"))
	assert.Equal(t, FallbackIcon, IconFor(""))
}

func TestLoad_UnknownIconFallsBack(t *testing.T) {
	c, err := Load([]byte(`
services:
  - id: ai
    title: AI Integration
    icon: Sparkles
`))
	require.NoError(t, err)
	assert.Equal(t, FallbackIcon, c.Services()[0].Icon)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":         "services: [",
		"duplicate id":   "services:\n  - {id: a, title: A}\n  - {id: a, title: B}\n",
		"missing title":  "services:\n  - {id: a}\n",
		"bad category":   "projects:\n  - {id: '1', slug: x, category: Game}\n",
		"duplicate slug": "projects:\n  - {id: '1', slug: x, category: App}\n  - {id: '2', slug: x, category: App}\n",
		"missing slug":   "projects:\n  - {id: '1', category: App}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidContent)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := mustDefault(t)

	s := c.Services()
	s[0].Title = "changed"
	assert.Equal(t, "Web Development", c.Services()[0].Title)
}
