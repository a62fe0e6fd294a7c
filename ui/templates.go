package ui

import (
	"bytes"
	"html/template"

	"github.com/gin-gonic/gin"

	"sportstat/internal/session"
)

// pageData is the model of the index page
type pageData struct {
	View    session.View
	Notice  string
	Warning string
	Error   string
	Column  string
	Result  template.HTML
	Dropped int
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	// render to a buffer first so a template error never leaves a half page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "template rendering failed"})
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
