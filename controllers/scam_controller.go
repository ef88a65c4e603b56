package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/services"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ScamController struct {
	Scams *services.ScamService
	Log   *logrus.Logger
}

func NewScamController(scams *services.ScamService, log *logrus.Logger) *ScamController {
	return &ScamController{Scams: scams, Log: log}
}

// parseFilter reads category, status, resolved, search and userId from the query string.
func parseFilter(c *gin.Context) (types.ScamFilter, error) {
	var filter types.ScamFilter

	if category := strings.ToUpper(c.Query("category")); category != "" {
		filter.Category = models.ScamCategory(category)
		if !filter.Category.Valid() {
			return filter, apperrors.Validation("Categoria inválida")
		}
	}

	if status := strings.ToUpper(c.Query("status")); status != "" {
		filter.Status = models.ScamStatus(status)
		if !filter.Status.Valid() {
			return filter, apperrors.Validation("Status inválido")
		}
	}

	if resolved := c.Query("resolved"); resolved != "" {
		value, err := strconv.ParseBool(resolved)
		if err != nil {
			return filter, apperrors.Validation("Parâmetro resolved inválido")
		}
		filter.Resolved = &value
	}

	if userID := c.Query("userId"); userID != "" {
		value, err := strconv.ParseUint(userID, 10, 64)
		if err != nil || value == 0 {
			return filter, apperrors.Validation("Parâmetro userId inválido")
		}
		id := uint(value)
		filter.UserID = &id
	}

	filter.Search = strings.TrimSpace(c.Query("search"))
	return filter, nil
}

func (sc *ScamController) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}
	page, limit := utils.ParsePagination(c)

	scams, pagination, err := sc.Scams.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: scams, Pagination: &pagination})
}

func (sc *ScamController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return
	}

	scam, err := sc.Scams.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: scam})
}

func (sc *ScamController) Create(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}

	var input types.CreateScamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, sc.Log, err)
		return
	}

	scam, err := sc.Scams.Create(c.Request.Context(), session.UserID, input)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    scam,
		Message: "Denúncia criada com sucesso",
	})
}

// authorize resolves the scam owner and checks the caller may change it.
func (sc *ScamController) authorize(c *gin.Context) (uint, bool) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return 0, false
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return 0, false
	}

	ownerID, err := sc.Scams.OwnerOf(c.Request.Context(), id)
	if err != nil {
		respondError(c, sc.Log, err)
		return 0, false
	}

	if !utils.CanMutate(ownerID, session) {
		respondError(c, sc.Log, apperrors.Forbidden("Você não tem permissão para alterar esta denúncia"))
		return 0, false
	}
	return id, true
}

func (sc *ScamController) Update(c *gin.Context) {
	var input types.UpdateScamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, sc.Log, err)
		return
	}

	id, ok := sc.authorize(c)
	if !ok {
		return
	}

	scam, err := sc.Scams.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: scam})
}

func (sc *ScamController) Delete(c *gin.Context) {
	id, ok := sc.authorize(c)
	if !ok {
		return
	}

	if err := sc.Scams.Delete(c.Request.Context(), id); err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Denúncia removida"})
}

func (sc *ScamController) Resolve(c *gin.Context) {
	var input types.ResolveScamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, sc.Log, err)
		return
	}

	id, ok := sc.authorize(c)
	if !ok {
		return
	}

	scam, err := sc.Scams.Resolve(c.Request.Context(), id, input.Note, input.Links)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    scam,
		Message: "Denúncia marcada como resolvida",
	})
}

func (sc *ScamController) Like(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return
	}

	result, err := sc.Scams.ToggleLike(c.Request.Context(), id, session.UserID)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: result})
}

func (sc *ScamController) Save(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return
	}

	if err := sc.Scams.Save(c.Request.Context(), session.UserID, id); err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Denúncia salva"})
}

func (sc *ScamController) Unsave(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return
	}

	if err := sc.Scams.Unsave(c.Request.Context(), session.UserID, id); err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Denúncia removida dos salvos"})
}

func (sc *ScamController) ListSaved(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)

	scams, pagination, err := sc.Scams.ListSaved(c.Request.Context(), session.UserID, page, limit)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: scams, Pagination: &pagination})
}

func (sc *ScamController) Report(c *gin.Context) {
	session, ok := requireSession(c, sc.Log)
	if !ok {
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, sc.Log)
		return
	}

	var input types.ReportScamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, sc.Log, err)
		return
	}

	report, err := sc.Scams.Report(c.Request.Context(), id, session.UserID, input.Reason, input.Description)
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"id":        report.ID,
			"scamId":    report.ScamID,
			"reason":    report.Reason,
			"status":    report.Status,
			"createdAt": report.CreatedAt,
		},
		Message: "Denúncia reportada para moderação",
	})
}
