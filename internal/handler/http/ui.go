package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/session"
	"github.com/MKhiriev/notion-to-github/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

const pageTemplate = "index.html"

// pageData is what templates/index.html renders.
type pageData struct {
	Session   *session.Session
	CanUpload bool
	Preview   template.HTML
	Version   string
}

func parsePageTemplate() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/"+pageTemplate)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, session.New())
}

// uiConvert runs the conversion step for the web form. The GitHub fields are
// carried through so a second conversion keeps what the user typed.
func (h *Handler) uiConvert(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFromForm(w, r)
	if !ok {
		return
	}

	req, err := s.BeginConvert(r.Context())
	if err != nil {
		h.renderPage(w, r, s)
		return
	}

	resp, err := h.services.ConversionService.Convert(r.Context(), req)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("form conversion failed")
		_ = s.FailConvert(convertErrorMessage(err))
	} else {
		_ = s.CompleteConvert(resp)
	}

	h.renderPage(w, r, s)
}

func (h *Handler) uiPublish(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFromForm(w, r)
	if !ok {
		return
	}

	req, err := s.BeginUpload(r.Context())
	if err != nil {
		h.renderPage(w, r, s)
		return
	}

	resp, err := h.services.PublishService.Publish(r.Context(), req)
	if err != nil {
		_, message, _ := publishErrorResponse(err)
		logger.FromRequest(r).Debug().Err(err).Msg("form upload failed")
		_ = s.FailUpload(message)
	} else {
		_ = s.CompleteUpload(resp)
	}

	h.renderPage(w, r, s)
}

// sessionFromForm rebuilds the session from the submitted form. A form only
// ever arrives in a resting state, so a busy state is treated as converted.
func (h *Handler) sessionFromForm(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return nil, false
	}

	s := session.New()
	s.NotionAPIKey = r.PostForm.Get("notionAPIKey")
	s.NotionURL = r.PostForm.Get("notionURL")
	s.GitHubUsername = r.PostForm.Get("githubUsername")
	s.GitHubToken = r.PostForm.Get("githubToken")
	s.GitHubRepo = r.PostForm.Get("githubRepo")
	s.Path = r.PostForm.Get("path")
	s.Filename = r.PostForm.Get("filename")

	s.State = session.ParseState(r.PostForm.Get("state"))
	if s.State.Busy() {
		s.State = session.Converted
	}
	if s.State.HasMarkdown() {
		s.Markdown = r.PostForm.Get("markdown")
	}

	return s, true
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, s *session.Session) {
	log := logger.FromRequest(r)

	data := pageData{
		Session:   s,
		CanUpload: s.CanUpload(),
		Version:   h.services.AppInfoService.GetAppVersion(r.Context()),
	}

	if s.Markdown != "" {
		preview, err := h.services.PreviewService.Preview(r.Context(), models.PreviewRequest{Content: s.Markdown})
		if err != nil {
			log.Err(err).Msg("rendering preview failed")
		} else {
			data.Preview = template.HTML(preview.HTML)
		}
	}

	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		log.Err(err).Msg("rendering page failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
