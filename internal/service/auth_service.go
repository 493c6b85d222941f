package service

import (
	"errors"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/jwt"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type AuthService interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	GetProfile(userID uuid.UUID) (model.UserResponse, error)
	GetUsers() []model.UserResponse
}

type authService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.store.UserByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.FullName, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) GetProfile(userID uuid.UUID) (model.UserResponse, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

func (s *authService) GetUsers() []model.UserResponse {
	users := s.store.Users()
	out := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}
	return out
}
