package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate/internal/application/user/usecases"
	"fixmate/internal/shared/logger"
	"fixmate/internal/shared/utils"
)

// AuthHandler serves signup and login. No session or token is issued; the
// caller owns any subsequent session mechanism.
type AuthHandler struct {
	signupUseCase SignupExecutor
	loginUseCase  LoginExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	signupUC SignupExecutor,
	loginUC LoginExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase: signupUC,
		loginUseCase:  loginUC,
		logger:        logger,
	}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body for signup and login.
type AuthResponse struct {
	OK   bool                 `json:"ok"`
	User *usecases.UserResult `json:"user"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body and an empty one get the same treatment: the
		// request is missing its required fields.
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing name, email or password")
		return
	}

	cmd := usecases.SignupCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AuthResponse{OK: true, User: result})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AuthResponse{OK: true, User: result})
}
