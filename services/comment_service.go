package services

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/pkg/errors"
)

type CommentService struct {
	comments repositories.CommentRepository
}

func NewCommentService(comments repositories.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// Create stores a comment on scamID. The scam is not looked up first: a
// missing scam surfaces as a foreign key violation from the store.
func (s *CommentService) Create(ctx context.Context, content string, scamID, ownerID uint) (*types.CommentResponse, error) {
	content, err := utils.ValidateCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		ScamID:  scamID,
		UserID:  ownerID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "create comment")
	}

	return s.Get(ctx, comment.ID)
}

func (s *CommentService) Get(ctx context.Context, id uint) (*types.CommentResponse, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get comment %d", id)
	}
	response := toCommentResponse(*comment)
	return &response, nil
}

// Update overwrites the content. Authorship is checked by the caller.
func (s *CommentService) Update(ctx context.Context, id uint, content string) (*types.CommentResponse, error) {
	content, err := utils.ValidateCommentContent(content)
	if err != nil {
		return nil, err
	}
	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return nil, errors.Wrapf(err, "update comment %d", id)
	}
	return s.Get(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id uint) error {
	return errors.Wrapf(s.comments.Delete(ctx, id), "delete comment %d", id)
}

func (s *CommentService) ListForScam(ctx context.Context, scamID uint, page, limit int) ([]types.CommentResponse, types.Pagination, error) {
	rows, total, err := s.comments.ListByScam(ctx, scamID, types.Offset(page, limit), limit)
	if err != nil {
		return nil, types.Pagination{}, errors.Wrap(err, "list comments")
	}

	comments := make([]types.CommentResponse, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toCommentResponse(row))
	}
	return comments, types.NewPagination(total, page, limit), nil
}
