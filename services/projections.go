package services

import (
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
)

func toAuthor(user models.User) types.Author {
	return types.Author{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
}

func toCommentResponse(comment models.Comment) types.CommentResponse {
	return types.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		ScamID:    comment.ScamID,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		User:      toAuthor(comment.User),
	}
}

func toUserResponse(row repositories.UserWithCounts) types.UserResponse {
	return types.UserResponse{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Bio:       row.Bio,
		Avatar:    row.Avatar,
		IsAdmin:   row.IsAdmin,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		Count: types.UserCounts{
			Scams:    row.ScamCount,
			Comments: row.CommentCount,
			Likes:    row.LikeCount,
		},
	}
}

func toScamResponse(row repositories.ScamWithCounts) types.ScamResponse {
	resolutionLinks := []string(row.ResolutionLinks)
	if resolutionLinks == nil {
		resolutionLinks = []string{}
	}
	evidence := []string(row.Evidence)
	if evidence == nil {
		evidence = []string{}
	}

	return types.ScamResponse{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		Category:        row.Category,
		Status:          row.Status,
		IsResolved:      row.IsResolved,
		ResolvedAt:      row.ResolvedAt,
		ResolutionNote:  row.ResolutionNote,
		ResolutionLinks: resolutionLinks,
		ScammerWebsite:  row.ScammerWebsite,
		ScammerPhone:    row.ScammerPhone,
		AmountLost:      row.AmountLost,
		Views:           row.Views,
		Evidence:        evidence,
		UserID:          row.UserID,
		User:            types.Author{ID: row.UserID, Name: row.OwnerName, Avatar: row.OwnerAvatar},
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		Count: types.ScamCounts{
			Comments: row.CommentCount,
			Likes:    row.LikeCount,
		},
	}
}

func toScamResponses(rows []repositories.ScamWithCounts) []types.ScamResponse {
	scams := make([]types.ScamResponse, 0, len(rows))
	for _, row := range rows {
		scams = append(scams, toScamResponse(row))
	}
	return scams
}
