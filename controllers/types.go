package controllers

import (
	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StandardResponse struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
	Message    string            `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// respondError maps err to its status once. Internal causes are logged, never returned.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		log.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),
			"path":       c.FullPath(),
		}).Error("request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   apperrors.Message(err),
		Code:    apperrors.Code(err),
	})
}

func respondBindError(c *gin.Context, log *logrus.Logger, err error) {
	respondError(c, log, apperrors.Validation("Dados inválidos: "+err.Error()))
}

func respondInvalidID(c *gin.Context, log *logrus.Logger) {
	respondError(c, log, apperrors.Validation("ID inválido"))
}

// requireSession returns the caller or aborts with 401 when the route was mounted without auth.
func requireSession(c *gin.Context, log *logrus.Logger) (*utils.Session, bool) {
	session := utils.GetSession(c)
	if session == nil {
		respondError(c, log, apperrors.Unauthorized("Token de autenticação obrigatório"))
		return nil, false
	}
	return session, true
}
