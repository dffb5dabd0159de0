package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML content file. Sections the file leaves out keep the
// built-in defaults. The returned catalog is validated and prepared.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	return Parse(data)
}

// Parse is LoadFile for an in-memory document.
func Parse(data []byte) (*Catalog, error) {
	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	c := defaultCatalog()
	c.merge(&override)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.Prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) merge(o *Catalog) {
	if o.Profile != (Profile{}) {
		c.Profile = o.Profile
	}
	if o.About.Text != "" || len(o.About.Highlights) > 0 {
		c.About = o.About
	}
	if len(o.Projects) > 0 {
		c.Projects = o.Projects
	}
	if len(o.Skills) > 0 {
		c.Skills = o.Skills
	}
	if o.Social != (SocialLinks{}) {
		c.Social = o.Social
	}
	if len(o.Nav) > 0 {
		c.Nav = o.Nav
	}
}

// Validate checks ids that the page and the scroll spy rely on.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("project %d: id is required", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("project %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
	}

	navSeen := make(map[string]bool, len(c.Nav))
	for i, item := range c.Nav {
		id := string(item.ID)
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("nav item %d: id is required", i))
		case navSeen[id]:
			errs = append(errs, fmt.Errorf("nav item %q: duplicate id", id))
		}
		navSeen[id] = true
	}

	return errors.Join(errs...)
}
