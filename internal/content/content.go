// Package content holds the author-curated data rendered by the site.
package content

import (
	"html/template"

	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy"
)

type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

type Project struct {
	ID                     string   `yaml:"id"`
	Title                  string   `yaml:"title"`
	Type                   string   `yaml:"type"`
	Tagline                string   `yaml:"tagline"`
	Description            string   `yaml:"description"` // markdown
	Features               []string `yaml:"features"`
	TechStack              []string `yaml:"tech_stack"`
	ArchitectureHighlights []string `yaml:"architecture_highlights"`
	Metrics                []Metric `yaml:"metrics"`
	Links                  []Link   `yaml:"links"`
	IconImage              string   `yaml:"icon_image"`
	Screenshots            []string `yaml:"screenshots"`
	GradientFrom           string   `yaml:"gradient_from"`
	GradientTo             string   `yaml:"gradient_to"`

	// DescriptionHTML is filled by Catalog.Prepare.
	DescriptionHTML template.HTML `yaml:"-"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	Icon  string `yaml:"icon"`
}

type SkillCategory struct {
	Key    string  `yaml:"key"`
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

type SocialLinks struct {
	GitHub  string `yaml:"github"`
	Discord string `yaml:"discord"`
	Email   string `yaml:"email"`
	Upwork  string `yaml:"upwork"`
}

// NavItem is a header link to a page section. ID doubles as the section's
// element id and the scroll-spy target.
type NavItem struct {
	ID    scrollspy.SectionID `yaml:"id"`
	Label string              `yaml:"label"`
}

type Profile struct {
	Name      string `yaml:"name"`
	Headline  string `yaml:"headline"`
	Summary   string `yaml:"summary"`
	Avatar    string `yaml:"avatar"`
	ResumeURL string `yaml:"resume_url"`
}

// Highlight is one card in the about section.
type Highlight struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
}

type About struct {
	Text       string      `yaml:"text"`
	Highlights []Highlight `yaml:"highlights"`
}

// Catalog is everything the page shows. It is read-only once prepared.
type Catalog struct {
	Profile  Profile         `yaml:"profile"`
	About    About           `yaml:"about"`
	Projects []Project       `yaml:"projects"`
	Skills   []SkillCategory `yaml:"skills"`
	Social   SocialLinks     `yaml:"social"`
	Nav      []NavItem       `yaml:"nav"`
}

// Project looks up a project by id.
func (c *Catalog) Project(id string) (*Project, bool) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], true
		}
	}
	return nil, false
}

// SectionIDs returns the nav targets in header order.
func (c *Catalog) SectionIDs() []scrollspy.SectionID {
	ids := make([]scrollspy.SectionID, 0, len(c.Nav))
	for _, item := range c.Nav {
		ids = append(ids, item.ID)
	}
	return ids
}
