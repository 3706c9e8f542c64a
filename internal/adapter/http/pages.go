package http

import (
	"bytes"
	"html/template"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"portfolio-server/internal/content"
	"portfolio-server/internal/nav"
	"portfolio-server/pkg/response"
)

// Pages renders the site's HTML pages from the template directory. The
// marketing page is assembled entirely from static content data; the
// builder and blog pages bootstrap their client scripts.
type Pages struct {
	tpl *template.Template
}

func NewPages(templateDir string) (*Pages, error) {
	tpl, err := template.ParseGlob(filepath.Join(templateDir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}
	return &Pages{tpl: tpl}, nil
}

func (p *Pages) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := p.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return response.Internal(c, "")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Home renders the single-page marketing site with its in-page anchors.
func (p *Pages) Home(c *fiber.Ctx) error {
	return p.render(c, "index.html", fiber.Map{
		"Profile":        content.Site(),
		"Experiences":    content.Experiences(),
		"Skills":         content.SkillCategories(),
		"Educations":     content.Educations(),
		"Certifications": content.Certifications(),
		"Sections":       nav.Sections(),
	})
}

// ResumeBuilder renders the builder shell; the record itself is fetched by
// the page script through the resume API.
func (p *Pages) ResumeBuilder(c *fiber.Ctx) error {
	return p.render(c, "resume_builder.html", fiber.Map{
		"Profile": content.Site(),
	})
}

// TravelBlogs renders the blog cards and the storybook launcher.
func (p *Pages) TravelBlogs(c *fiber.Ctx) error {
	return p.render(c, "travel_blogs.html", fiber.Map{
		"Profile": content.Site(),
		"Blogs":   content.TravelBlogs(),
	})
}
