package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
)

type AuthController struct {
	adminService service.AdminService
}

func NewAuthController(adminService service.AdminService) *AuthController {
	return &AuthController{adminService: adminService}
}

// Login godoc
// @Summary Check admin credentials
// @Description Compares the query credentials with the stored admin record. No session is issued.
// @Tags Admin
// @Produce json
// @Param userid query string true "Admin user ID"
// @Param password query string true "Admin password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No admin credentials stored"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/login [get]
func (c *AuthController) Login(ctx *gin.Context) {
	var query dto.AdminLoginQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	if err := c.adminService.Login(ctx.Request.Context(), query.UserID, query.Password); err != nil {
		httpx.Error(ctx, err, "Error during login")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Login successful"})
}
