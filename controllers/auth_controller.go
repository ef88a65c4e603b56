package controllers

import (
	"net/http"

	"github.com/alerta-golpe/api-go/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
	Log   *logrus.Logger
}

func NewAuthController(auth *services.AuthService, users *services.UserService, log *logrus.Logger) *AuthController {
	return &AuthController{Auth: auth, Users: users, Log: log}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type googleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, ac.Log, err)
		return
	}

	session, err := ac.Auth.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    session,
		Message: "Cadastro realizado com sucesso",
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, ac.Log, err)
		return
	}

	session, err := ac.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: session})
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input googleLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, ac.Log, err)
		return
	}

	session, err := ac.Auth.GoogleLogin(c.Request.Context(), input.Code)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: session})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	session, ok := requireSession(c, ac.Log)
	if !ok {
		return
	}

	user, err := ac.Users.Get(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}
