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

type UserController struct {
	Users *services.UserService
	Log   *logrus.Logger
}

func NewUserController(users *services.UserService, log *logrus.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

func (uc *UserController) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	users, pagination, err := uc.Users.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: users, Pagination: &pagination})
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, uc.Log)
		return
	}

	user, err := uc.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}

func (uc *UserController) ListScams(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, uc.Log)
		return
	}
	page, limit := utils.ParsePagination(c)

	scams, pagination, err := uc.Users.ListScams(c.Request.Context(), id, page, limit)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: scams, Pagination: &pagination})
}

func (uc *UserController) Stats(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, uc.Log)
		return
	}

	stats, err := uc.Users.Stats(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: stats})
}

func (uc *UserController) update(c *gin.Context, id uint) {
	var patch types.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, uc.Log, err)
		return
	}
	if patch.Empty() {
		respondError(c, uc.Log, apperrors.Validation("Nenhum campo para atualizar"))
		return
	}

	user, err := uc.Users.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    user,
		Message: "Perfil atualizado com sucesso",
	})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}
	uc.update(c, session.UserID)
}

func (uc *UserController) UpdateByID(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, uc.Log)
		return
	}

	if !utils.CanMutate(id, session) {
		respondError(c, uc.Log, apperrors.Forbidden("Você não tem permissão para alterar este usuário"))
		return
	}
	uc.update(c, id)
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}

	var input types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, uc.Log, err)
		return
	}

	if err := uc.Users.ChangePassword(c.Request.Context(), session.UserID, input.CurrentPassword, input.NewPassword); err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Senha alterada com sucesso"})
}

func (uc *UserController) DeleteProfile(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}

	if err := uc.Users.Deactivate(c.Request.Context(), session.UserID); err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Conta desativada com sucesso"})
}
