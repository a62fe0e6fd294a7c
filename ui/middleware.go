package ui

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sportstat/internal/session"
)

const sessionKey = "session"

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Error("failed to open static files: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// requestLogger logs each request through the application logger
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// sessionMiddleware attaches the caller's session, creating one and setting
// the cookie when none is known
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	name := s.cfg.Session.CookieName
	maxAge := int(s.cfg.Session.TTL / time.Second)
	return func(c *gin.Context) {
		raw, _ := c.Cookie(name)
		sess, created := s.sessions.GetOrCreate(raw)
		if created {
			s.preload(c.Request.Context(), sess)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(name, sess.ID().String(), maxAge, "/", "", false, true)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
