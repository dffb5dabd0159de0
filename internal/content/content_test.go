package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(c.Projects) != 3 {
		t.Fatalf("projects = %d, want 3", len(c.Projects))
	}
	if len(c.Skills) != 4 {
		t.Fatalf("skill categories = %d, want 4", len(c.Skills))
	}

	want := []scrollspy.SectionID{"about", "projects", "skills", "contact"}
	got := c.SectionIDs()
	if len(got) != len(want) {
		t.Fatalf("SectionIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SectionIDs() = %v, want %v", got, want)
		}
	}
}

func TestDefaultDescriptionsRendered(t *testing.T) {
	c := Default()
	p, ok := c.Project("gnote")
	if !ok {
		t.Fatal("gnote not found")
	}
	if !strings.Contains(string(p.DescriptionHTML), "<strong>offline-first</strong>") {
		t.Fatalf("DescriptionHTML = %q", p.DescriptionHTML)
	}
}

func TestProjectLookup(t *testing.T) {
	c := Default()
	if _, ok := c.Project("missing"); ok {
		t.Fatal("found a project that does not exist")
	}
	p, ok := c.Project("localize-ai")
	if !ok || p.Title != "LocalizeAI" {
		t.Fatalf("Project(localize-ai) = %+v, %v", p, ok)
	}
}

func TestParseOverridesSections(t *testing.T) {
	doc := `
profile:
  name: Ada
  headline: Engineer
projects:
  - id: engine
    title: Analytical Engine
    description: "Runs *programs*."
    screenshots: [a.png, b.png]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Profile.Name != "Ada" {
		t.Fatalf("Profile.Name = %q, want Ada", c.Profile.Name)
	}
	if len(c.Projects) != 1 || c.Projects[0].ID != "engine" {
		t.Fatalf("Projects = %+v", c.Projects)
	}
	if !strings.Contains(string(c.Projects[0].DescriptionHTML), "<em>programs</em>") {
		t.Fatalf("DescriptionHTML = %q", c.Projects[0].DescriptionHTML)
	}
	// Untouched sections keep their defaults.
	if len(c.Nav) != 4 || len(c.Skills) != 4 {
		t.Fatalf("defaults lost: nav=%d skills=%d", len(c.Nav), len(c.Skills))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"duplicate project", "projects:\n  - id: a\n  - id: a\n", "duplicate id"},
		{"missing project id", "projects:\n  - title: x\n", "id is required"},
		{"duplicate nav", "nav:\n  - id: about\n  - id: about\n", "duplicate id"},
		{"bad yaml", "projects: [", "parsing content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("social:\n  github: https://github.com/example\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Social.GitHub != "https://github.com/example" {
		t.Fatalf("Social.GitHub = %q", c.Social.GitHub)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderMarkdownDropsRawHTML(t *testing.T) {
	out, err := RenderMarkdown("hello <script>alert(1)</script>")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("raw html rendered: %q", out)
	}
}
