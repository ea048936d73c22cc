package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pytechdigital/content-api/pkg/logger"
)

// Service handles contact-form intake.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit assigns the submission a fresh ID and UTC timestamp, persists it and
// returns the full record. Identical payloads are never deduplicated; every
// call appends a new entry.
func (s *Service) Submit(ctx context.Context, form *Form) (*Submission, error) {
	sub := &Submission{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		City:      form.City,
		Service:   form.Service,
		Message:   form.Message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}
	// notification dispatch (email etc.) is handled outside this service
	logger.Infof("New contact submission from %s - %s", sub.Name, sub.Email)
	return sub, nil
}
