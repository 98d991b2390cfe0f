package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intellecta-site/pkg/components"
	"intellecta-site/pkg/content"
	"intellecta-site/pkg/faq"
	"intellecta-site/pkg/hero"
	"intellecta-site/pkg/links"
	"intellecta-site/pkg/logger"
	"intellecta-site/pkg/metrics"
	"intellecta-site/pkg/models"
	"intellecta-site/pkg/nav"
	"intellecta-site/pkg/services"
	"intellecta-site/pkg/validation"
)

const (
	sessionCookie = "intellecta_session"
	heroStreamURL = "/hero/stream"
	enquiriesURL  = "/api/enquiries"
)

// Options carries the settings handlers need besides their collaborators.
type Options struct {
	BaseURL      string
	Links        links.Builder
	HeroInterval time.Duration
	ResetDelay   time.Duration
	// Now is used for the footer year; nil means time.Now.
	Now func() time.Time
}

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	enquiries services.EnquiryService
	site      *content.Site
	metrics   *metrics.SiteMetrics
	log       *logger.Logger
	opts      Options
}

// NewHandlers creates a new Handlers instance
func NewHandlers(enquiries services.EnquiryService, site *content.Site, m *metrics.SiteMetrics, log *logger.Logger, opts Options) *Handlers {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{
		enquiries: enquiries,
		site:      site,
		metrics:   m,
		log:       log,
		opts:      opts,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Page renders the landing page. ?faq=N opens one answer and ?menu=open the drawer.
func (h *Handlers) Page(c *gin.Context) {
	session := h.session(c)
	data := h.PageData(c.Query("faq"), c.Query("menu"))
	data.Form.Status = h.enquiries.Status(session)
	h.render(c, http.StatusOK, data)
}

// SubmitContact handles the form post made without the page script.
func (h *Handlers) SubmitContact(c *gin.Context) {
	session := h.session(c)
	data := h.PageData("", "")

	var enquiry models.Enquiry
	if err := c.ShouldBind(&enquiry); err != nil {
		h.metrics.ObserveEnquiry("form", metrics.OutcomeInvalid)
		data.Form.Errors = validation.FieldErrors{"form": "We couldn't read your enquiry, please try again."}
		h.render(c, http.StatusBadRequest, data)
		return
	}

	dispatch, err := h.enquiries.Submit(c.Request.Context(), session, enquiry)
	switch {
	case err == nil:
		h.metrics.ObserveEnquiry("form", metrics.OutcomeAccepted)
		data.Form.Status = dispatch.Status
		data.Form.Dispatch = dispatch
		h.render(c, http.StatusOK, data)
	case errors.Is(err, services.ErrSpam):
		h.metrics.ObserveEnquiry("form", metrics.OutcomeSpam)
		data.Form.Status = h.enquiries.Status(session)
		h.render(c, http.StatusOK, data)
	case errors.Is(err, models.ErrInvalidTransition):
		h.metrics.ObserveEnquiry("form", metrics.OutcomeBusy)
		data.Form.Values = enquiry
		data.Form.Status = h.enquiries.Status(session)
		h.render(c, http.StatusTooManyRequests, data)
	default:
		fields := validation.Fields(err)
		if fields == nil {
			h.fail(c, err)
			return
		}
		h.metrics.ObserveEnquiry("form", metrics.OutcomeInvalid)
		h.metrics.ObserveInvalidFields(fields.Names())
		data.Form.Values = enquiry
		data.Form.Errors = fields
		data.Form.Status = h.enquiries.Status(session)
		h.render(c, http.StatusUnprocessableEntity, data)
	}
}

// CreateEnquiry is the JSON endpoint the page script posts to.
func (h *Handlers) CreateEnquiry(c *gin.Context) {
	var enquiry models.Enquiry
	if err := c.ShouldBindJSON(&enquiry); err != nil {
		h.metrics.ObserveEnquiry("api", metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	// The script keeps its own button status, so API submissions are untracked.
	dispatch, err := h.enquiries.Submit(c.Request.Context(), "", enquiry)
	switch {
	case err == nil:
		h.metrics.ObserveEnquiry("api", metrics.OutcomeAccepted)
		c.JSON(http.StatusOK, models.EnquiryResponse{
			Status:       dispatch.Status.String(),
			Summary:      dispatch.Summary,
			EmailURL:     dispatch.EmailURL,
			MessagingURL: dispatch.MessagingURL,
		})
	case errors.Is(err, services.ErrSpam):
		h.metrics.ObserveEnquiry("api", metrics.OutcomeSpam)
		c.Status(http.StatusNoContent)
	case errors.Is(err, models.ErrInvalidTransition):
		h.metrics.ObserveEnquiry("api", metrics.OutcomeBusy)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "busy"})
	default:
		fields := validation.Fields(err)
		if fields == nil {
			h.fail(c, err)
			return
		}
		h.metrics.ObserveEnquiry("api", metrics.OutcomeInvalid)
		h.metrics.ObserveInvalidFields(fields.Names())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
	}
}

// HeroStream sends the slideshow as server-sent events. Every connection
// gets its own rotation starting at the first slide.
func (h *Handlers) HeroStream(c *gin.Context) {
	rotator, err := hero.NewRotator(h.site.Hero.Images, h.site.Hero.Words)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.metrics.HeroStreamOpened()
	defer h.metrics.HeroStreamClosed()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	send := func(f hero.Frame) error {
		c.SSEvent("slide", f)
		c.Writer.Flush()
		return nil
	}
	_ = send(rotator.Frame())

	err = rotator.Run(c.Request.Context(), h.opts.HeroInterval, send)
	if err != nil && c.Request.Context().Err() == nil {
		h.log.Error(err, "hero stream stopped")
	}
}

// PageData builds the render input from the raw faq and menu query values.
func (h *Handlers) PageData(faqQuery, menuQuery string) components.PageData {
	return components.PageData{
		Site:         h.site,
		BaseURL:      h.opts.BaseURL,
		Links:        h.opts.Links,
		Menu:         nav.Parse(menuQuery),
		FAQ:          faq.Parse(faqQuery, len(h.site.FAQs.Items)),
		HeroStream:   heroStreamURL,
		HeroInterval: h.opts.HeroInterval,
		API:          enquiriesURL,
		ResetDelay:   h.opts.ResetDelay,
		Year:         h.opts.Now().Year(),
	}
}

func (h *Handlers) render(c *gin.Context, status int, data components.PageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := components.Page(data).Render(c.Writer); err != nil {
		h.log.Error(err, "render page")
		h.metrics.ObservePageRender("error")
		return
	}
	h.metrics.ObservePageRender(http.StatusText(status))
}

func (h *Handlers) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// session returns the visitor's session id, issuing a cookie on first sight.
func (h *Handlers) session(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}
