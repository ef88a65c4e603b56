package controllers

import (
	"net/http"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/services"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CommentController struct {
	Comments *services.CommentService
	Log      *logrus.Logger
}

func NewCommentController(comments *services.CommentService, log *logrus.Logger) *CommentController {
	return &CommentController{Comments: comments, Log: log}
}

func (cc *CommentController) Create(c *gin.Context) {
	session, ok := requireSession(c, cc.Log)
	if !ok {
		return
	}

	var input types.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, cc.Log, err)
		return
	}

	comment, err := cc.Comments.Create(c.Request.Context(), input.Content, input.ScamID, session.UserID)
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    comment,
		Message: "Comentário publicado",
	})
}

func (cc *CommentController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, cc.Log)
		return
	}

	comment, err := cc.Comments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: comment})
}

// authorize loads the comment and checks the caller may change it.
func (cc *CommentController) authorize(c *gin.Context) (uint, bool) {
	session, ok := requireSession(c, cc.Log)
	if !ok {
		return 0, false
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, cc.Log)
		return 0, false
	}

	comment, err := cc.Comments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, cc.Log, err)
		return 0, false
	}

	if !utils.CanMutate(comment.UserID, session) {
		respondError(c, cc.Log, apperrors.Forbidden("Você não tem permissão para alterar este comentário"))
		return 0, false
	}
	return id, true
}

func (cc *CommentController) Update(c *gin.Context) {
	var input types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, cc.Log, err)
		return
	}

	id, ok := cc.authorize(c)
	if !ok {
		return
	}

	comment, err := cc.Comments.Update(c.Request.Context(), id, input.Content)
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: comment})
}

func (cc *CommentController) Delete(c *gin.Context) {
	id, ok := cc.authorize(c)
	if !ok {
		return
	}

	if err := cc.Comments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Comentário removido"})
}

func (cc *CommentController) ListForScam(c *gin.Context) {
	scamID, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, cc.Log)
		return
	}
	page, limit := utils.ParsePagination(c)

	comments, pagination, err := cc.Comments.ListForScam(c.Request.Context(), scamID, page, limit)
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: comments, Pagination: &pagination})
}
