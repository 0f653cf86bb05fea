package service

import (
	"errors"
	"fmt"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type RoleService interface {
	CreateRole(req dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetRole(id uint) (*dto.RoleResponse, error)
	GetAllRoles() ([]dto.RoleResponse, error)
	DeleteRole(id uint) error
}

type roleService struct {
	roleRepo repository.RoleRepository
}

func NewRoleService(roleRepo repository.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) CreateRole(req dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.roleRepo.FindByName(req.RoleName); err == nil {
		return nil, apperr.Invalidf("Role with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing role: %w", err)
	}

	role := model.Role{RoleName: req.RoleName}
	if err := s.roleRepo.Create(&role); err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}
	var resp dto.RoleResponse
	copier.Copy(&resp, &role)
	return &resp, nil
}

func (s *roleService) GetRole(id uint) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Role not found")
		}
		return nil, fmt.Errorf("looking up role: %w", err)
	}
	var resp dto.RoleResponse
	copier.Copy(&resp, role)
	return &resp, nil
}

func (s *roleService) GetAllRoles() ([]dto.RoleResponse, error) {
	roles, err := s.roleRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	resp := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		var item dto.RoleResponse
		copier.Copy(&item, &roles[i])
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *roleService) DeleteRole(id uint) error {
	if _, err := s.roleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Role not found")
		}
		return fmt.Errorf("looking up role: %w", err)
	}
	return s.roleRepo.Delete(id)
}
