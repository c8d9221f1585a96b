package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// noteService is the concrete implementation of NoteService. Business rules
// worth the name live in the repository (ownership scoping, optimistic
// locking); this layer shapes requests into documents and keeps the
// repository types out of the handlers.
type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository.
// Wrap it with NewNoteValidationService so invalid requests never reach the
// repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, userID string, req models.NoteCreateRequest) (models.Note, error) {
	ownerID, err := parseOwnerID(ctx, userID)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		UserID:   ownerID,
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
		Archived: req.Archived,
	}

	return s.noteRepository.CreateNote(ctx, note)
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, userID, noteID)
}

func (s *noteService) ListNotes(ctx context.Context, userID string, filter models.NoteListFilter) ([]models.Note, error) {
	return s.noteRepository.ListNotes(ctx, userID, filter)
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID string, req models.NoteUpdateRequest) (models.Note, error) {
	return s.noteRepository.UpdateNote(ctx, userID, noteID, req)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string, version int64) error {
	return s.noteRepository.DeleteNote(ctx, userID, noteID, version)
}

// parseOwnerID converts the authenticated subject into an ObjectID. Subjects
// originate from tokens this application issued, so a parse failure means the
// request cannot be attributed to a stored account.
func parseOwnerID(ctx context.Context, userID string) (bson.ObjectID, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		logger.FromContext(ctx).Error().
			Str("user_id", userID).
			Msg("authenticated subject is not a valid object id")
		return bson.ObjectID{}, ErrInvalidDataProvided
	}

	return ownerID, nil
}
