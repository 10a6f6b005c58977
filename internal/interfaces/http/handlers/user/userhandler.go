package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/user/usecases"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type UserHandler struct {
	registerUC     *usecases.RegisterUserUseCase
	authenticateUC *usecases.AuthenticateUserUseCase
	setRoleUC      *usecases.SetRoleUseCase
	logger         logger.Interface
}

func NewUserHandler(
	registerUC *usecases.RegisterUserUseCase,
	authenticateUC *usecases.AuthenticateUserUseCase,
	setRoleUC *usecases.SetRoleUseCase,
) *UserHandler {
	return &UserHandler{
		registerUC:     registerUC,
		authenticateUC: authenticateUC,
		setRoleUC:      setRoleUC,
		logger:         logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetRole handles PUT /users/:id/role
func (h *UserHandler) SetRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.setRoleUC.Execute(c.Request.Context(), usecases.SetRoleCommand{
		UserID: uint(userID),
		Role:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
