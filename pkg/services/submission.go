package services

import (
	"context"
	"errors"
	"fmt"

	"intellecta-site/pkg/links"
	"intellecta-site/pkg/logger"
	"intellecta-site/pkg/models"
	"intellecta-site/pkg/utils"
	"intellecta-site/pkg/validation"
)

// ErrSpam is returned when the honeypot field was filled in. Callers drop the
// submission silently.
var ErrSpam = errors.New("honeypot filled")

// Dispatch is what an accepted enquiry turns into.
type Dispatch struct {
	Summary      string
	EmailURL     string
	MessagingURL string
	Status       models.SubmitStatus
}

// EnquiryService defines the contact form workflow
type EnquiryService interface {
	// Submit validates an enquiry and builds its outbound links.
	// session identifies the visitor for the button status; "" leaves it untracked.
	Submit(ctx context.Context, session string, enquiry models.Enquiry) (*Dispatch, error)
	// Status returns the button status for a visitor session.
	Status(session string) models.SubmitStatus
}

type enquiryServiceImpl struct {
	links    links.Builder
	statuses *StatusStore
	log      *logger.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(builder links.Builder, statuses *StatusStore, log *logger.Logger) EnquiryService {
	return &enquiryServiceImpl{
		links:    builder,
		statuses: statuses,
		log:      log,
	}
}

func (s *enquiryServiceImpl) Status(session string) models.SubmitStatus {
	return s.statuses.Get(session)
}

// Submit handles the entire submission workflow
func (s *enquiryServiceImpl) Submit(ctx context.Context, session string, enquiry models.Enquiry) (*Dispatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := s.log.WithFields(map[string]any{"enquiry": utils.Fingerprint(enquiry.Email)})

	if enquiry.IsSpam() {
		log.Warn("honeypot filled, dropping enquiry")
		return nil, ErrSpam
	}

	if err := validation.Struct(enquiry); err != nil {
		log.Debug("enquiry failed validation")
		return nil, err
	}

	if err := s.statuses.Begin(session); err != nil {
		return nil, fmt.Errorf("begin submission: %w", err)
	}

	summary := links.Summary(enquiry)
	dispatch := &Dispatch{
		Summary:      summary,
		EmailURL:     s.links.EmailURL(summary),
		MessagingURL: s.links.MessagingURL(summary),
		Status:       models.StatusDone,
	}

	if err := s.statuses.Finish(session); err != nil {
		return nil, fmt.Errorf("finish submission: %w", err)
	}

	log.Info("enquiry accepted")
	return dispatch, nil
}
