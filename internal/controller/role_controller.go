package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/service"
)

type RoleController struct {
	roleSvc service.RoleService
}

func NewRoleController(roleSvc service.RoleService) *RoleController {
	return &RoleController{roleSvc: roleSvc}
}

// CreateRole godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role data"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate role name"
// @Router /roles [post]
func (ctrl *RoleController) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	role, err := ctrl.roleSvc.CreateRole(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// GetRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Router /roles [get]
func (ctrl *RoleController) GetRoles(c *gin.Context) {
	roles, err := ctrl.roleSvc.GetAllRoles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetRole godoc
// @Summary Get a role by ID
// @Tags roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{id} [get]
func (ctrl *RoleController) GetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	role, err := ctrl.roleSvc.GetRole(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// DeleteRole godoc
// @Summary Delete a role
// @Tags roles
// @Param id path int true "Role ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{id} [delete]
func (ctrl *RoleController) DeleteRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.roleSvc.DeleteRole(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Role deleted successfully"})
}
