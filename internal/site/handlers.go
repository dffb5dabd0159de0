package site

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alvesoscar517-cloud/portfolio/internal/content"
	"github.com/alvesoscar517-cloud/portfolio/internal/gallery"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":   s.catalog.Profile,
		"about":     s.catalog.About,
		"projects":  s.catalog.Projects,
		"skills":    s.catalog.Skills,
		"social":    s.catalog.Social,
		"nav":       s.catalog.Nav,
		"spyOffset": s.cfg.ScrollOffset,
		"year":      time.Now().Year(),
	})
}

// previewView is the two-up screenshot carousel in the project modal.
type previewView struct {
	Project       *content.Project
	First, Second int
	HasSecond     bool
	Prev, Next    int
	Total         int
}

func newPreview(p *content.Project, i int) previewView {
	n := len(p.Screenshots)
	first, second := gallery.Pair(i, n)
	return previewView{
		Project:   p,
		First:     first,
		Second:    second,
		HasSecond: n > 1,
		Prev:      gallery.Wrap(first-1, n),
		Next:      gallery.Wrap(first+1, n),
		Total:     n,
	}
}

func (s *Server) handleProject(c *gin.Context) {
	p, ok := s.catalog.Project(c.Param("id"))
	if !ok {
		s.notFound(c, "Project not found.")
		return
	}

	data := gin.H{"project": p}
	if len(p.Screenshots) > 0 {
		data["preview"] = newPreview(p, 0)
	}
	c.HTML(http.StatusOK, "project.html", data)
}

func (s *Server) handlePreview(c *gin.Context) {
	p, ok := s.catalog.Project(c.Param("id"))
	if !ok {
		s.notFound(c, "Project not found.")
		return
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= len(p.Screenshots) {
		s.notFound(c, "Screenshot not found.")
		return
	}
	c.HTML(http.StatusOK, "preview", newPreview(p, i))
}

type lightboxView struct {
	Project *content.Project
	Index   int
	Prev    int
	Next    int
	Total   int
	Src     string
}

func (s *Server) handleScreenshot(c *gin.Context) {
	p, ok := s.catalog.Project(c.Param("id"))
	if !ok {
		s.notFound(c, "Project not found.")
		return
	}

	lb := gallery.New(len(p.Screenshots))
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= lb.Len() {
		s.notFound(c, "Screenshot not found.")
		return
	}
	lb.Open(i)

	view := lightboxView{
		Project: p,
		Index:   lb.Index(),
		Total:   lb.Len(),
		Src:     p.Screenshots[lb.Index()],
	}
	lb.Prev()
	view.Prev = lb.Index()
	lb.Open(i)
	lb.Next()
	view.Next = lb.Index()

	c.HTML(http.StatusOK, "lightbox.html", view)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"projects": len(s.catalog.Projects),
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	s.notFound(c, "Page not found.")
}

func (s *Server) notFound(c *gin.Context, msg string) {
	c.HTML(http.StatusNotFound, "not-found.html", gin.H{"message": msg})
}
