package service

import (
	"errors"
	"fmt"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/rbac"
	"github.com/intervia/testbank/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	GetUser(id uint) (*dto.UserResponse, error)
	GetAllUsers() ([]dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, roleRepo: roleRepo, tokens: tokens}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Role not found")
		}
		return nil, fmt.Errorf("looking up role: %w", err)
	}
	if _, ok := rbac.Parse(role.RoleName); !ok {
		return nil, apperr.Invalidf("role %q is not assignable", role.RoleName)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperr.Invalidf("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   role.ID,
		Role:     *role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbiddenf("Invalid credentials")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Forbiddenf("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Role.RoleName)
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("Failed to issue token")
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *authService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		var item dto.UserResponse
		copier.Copy(&item, &users[i])
		resp = append(resp, item)
	}
	return resp, nil
}
