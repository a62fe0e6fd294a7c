package ui

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"sportstat/domain/core"
	"sportstat/internal/errors"
	"sportstat/internal/plotting"
	"sportstat/internal/report"
	"sportstat/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// newPage fills the page model from the session state
func newPage(sess *session.Session) pageData {
	page := pageData{View: sess.View()}
	if latest := page.View.Latest; latest != nil {
		page.Column = latest.Column
		page.Result = report.HTML(latest)
	}
	return page
}

// renderPage shows the index page with err as an error or warning
func (s *Server) renderPage(c *gin.Context, page pageData, err error) {
	status := http.StatusOK
	if err != nil {
		code := errors.GetCode(err)
		status = errors.HTTPStatus(code)
		if core.IsWarning(err) {
			page.Warning = err.Error()
		} else {
			page.Error = err.Error()
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("request failed: %v", err)
		}
	}
	s.renderTemplate(c, status, "index.html", page)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderPage(c, newPage(currentSession(c)), nil)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *Server) handleUpload(c *gin.Context) {
	sess := currentSession(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.UploadMaxBytes)

	header, err := c.FormFile("file")
	if err != nil {
		s.renderPage(c, newPage(sess), errors.InvalidInput("choose a CSV or Excel file to upload"))
		return
	}
	file, err := header.Open()
	if err != nil {
		s.renderPage(c, newPage(sess), core.NewFileReadError(header.Filename, err))
		return
	}
	defer file.Close()

	ds, err := sess.Load(c.Request.Context(), header.Filename, file)
	page := newPage(sess)
	if ds != nil {
		page.Notice = fmt.Sprintf("Loaded %s: %d rows, %d columns", ds.Source(), ds.Len(), len(ds.Names()))
	}
	s.renderPage(c, page, err)
}

func (s *Server) handleCategory(c *gin.Context) {
	sess := currentSession(c)
	_, err := sess.SelectCategory(c.PostForm("category"))
	s.renderPage(c, newPage(sess), err)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	sess := currentSession(c)
	column := c.PostForm("column")
	if column == "" {
		s.renderPage(c, newPage(sess), errors.InvalidInput("choose a column to analyze"))
		return
	}

	if err := checkSelectable(sess, column); err != nil {
		s.renderPage(c, newPage(sess), err)
		return
	}

	result, err := sess.Analyze(column)
	page := newPage(sess)
	if err != nil {
		s.renderPage(c, page, err)
		return
	}
	page.Column = result.Column
	page.Result = report.HTML(result)
	if sample, serr := sess.Sample(column); serr == nil {
		page.Dropped = sample.Dropped()
	}
	s.renderPage(c, page, nil)
}

// checkSelectable limits page analyses to the columns offered for the chosen
// category. Without a dataset the session reports the missing load itself.
func checkSelectable(sess *session.Session, column string) error {
	if sess.Dataset() == nil || sess.HasColumn(column) {
		return nil
	}
	return errors.InvalidInput(fmt.Sprintf("column %q is not offered for the selected category", column))
}

func (s *Server) handlePlot(c *gin.Context) {
	sess := currentSession(c)
	kind, err := plotting.ParseKind(c.Param("kind"))
	if err != nil {
		s.abortJSON(c, errors.InvalidInput(err.Error()))
		return
	}
	plots, err := sess.Plots(c.Query("column"))
	if err != nil {
		s.abortJSON(c, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(plots, kind, &buf); err != nil {
		s.abortJSON(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleExport(c *gin.Context) {
	sess := currentSession(c)
	column := c.Query("column")
	result := sess.Latest()
	if column == "" && result != nil {
		column = result.Column
	}
	if err := checkSelectable(sess, column); err != nil {
		s.abortJSON(c, err)
		return
	}
	if result == nil || result.Column != column {
		var err error
		if result, err = sess.Analyze(column); err != nil {
			s.abortJSON(c, err)
			return
		}
	}
	sample, err := sess.Sample(column)
	if err != nil {
		s.abortJSON(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, result, sample.Values()); err != nil {
		s.abortJSON(c, errors.Wrapf(err, "failed to build workbook for %s", column))
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": exportFilename(column),
	}))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) abortJSON(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": code})
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func exportFilename(column string) string {
	name := unsafeFilename.ReplaceAllString(column, "_")
	if name == "" || name == "_" {
		name = "column"
	}
	return name + "-analysis.xlsx"
}
