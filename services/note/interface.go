package note

import (
	"context"

	"consultly/models"
	"consultly/utils"

	noteRepo "consultly/database/repository/note"
)

// NoteService manages provider-authored consultation notes. Notes belong to
// the provider who wrote them; only that provider can change or remove one.
type NoteService interface {
	Create(ctx context.Context, providerID string, req models.NoteRequest) (*models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Note, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.Note, error)
	Update(ctx context.Context, id, providerID, title, content string) (*models.Note, error)
	Delete(ctx context.Context, id, providerID string) error
}

// DefaultNoteService is the production implementation.
type DefaultNoteService struct {
	Repo noteRepo.NoteRepository
}

func NewDefaultNoteService(repo noteRepo.NoteRepository) NoteService {
	return &DefaultNoteService{Repo: repo}
}

func (s *DefaultNoteService) Create(ctx context.Context, providerID string, req models.NoteRequest) (*models.Note, error) {
	switch {
	case req.UserID == "":
		return nil, &utils.ValidationError{Field: "userId", Message: "is required"}
	case req.Title == "":
		return nil, &utils.ValidationError{Field: "title", Message: "is required"}
	case req.Content == "":
		return nil, &utils.ValidationError{Field: "content", Message: "is required"}
	}

	note := models.Note{
		UserID:     req.UserID,
		ProviderID: providerID,
		BookingID:  req.BookingID,
		Title:      req.Title,
		Content:    req.Content,
	}
	id, err := s.Repo.Create(ctx, note)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultNoteService) GetByID(ctx context.Context, id string) (*models.Note, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultNoteService) ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Note, error) {
	return s.Repo.ListByUser(ctx, userID, page, limit)
}

func (s *DefaultNoteService) ListByBooking(ctx context.Context, bookingID string) ([]models.Note, error) {
	return s.Repo.ListByBooking(ctx, bookingID)
}

func (s *DefaultNoteService) Update(ctx context.Context, id, providerID, title, content string) (*models.Note, error) {
	if err := s.requireAuthor(ctx, id, providerID); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, title, content)
}

func (s *DefaultNoteService) Delete(ctx context.Context, id, providerID string) error {
	if err := s.requireAuthor(ctx, id, providerID); err != nil {
		return err
	}
	return s.Repo.DeleteByID(ctx, id)
}

func (s *DefaultNoteService) requireAuthor(ctx context.Context, id, providerID string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ProviderID != providerID {
		return &utils.UnauthorizedError{Message: "only the authoring provider can modify this note"}
	}
	return nil
}
