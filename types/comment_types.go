package types

import "time"

type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	ScamID    uint      `json:"scamId"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      Author    `json:"user"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	ScamID  uint   `json:"scamId" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
