package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Moorhen/internal/auth"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/model"
	"github.com/lshigami/Moorhen/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterDTO) (string, error)
	Login(req dto.LoginDTO) (string, error)
	ValidateToken(tokenString string) (auth.Identity, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: []byte(jwtSecret)}
}

func (s *authService) Register(req dto.RegisterDTO) (string, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("checking username %q: %w", req.Username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	user := model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return "", fmt.Errorf("creating user: %w", err)
	}
	return s.generateToken(&user)
}

func (s *authService) Login(req dto.LoginDTO) (string, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(user)
}

func (s *authService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"role":      user.Role,
		"superuser": user.IsSuperuser,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (auth.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return auth.Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Identity{}, errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return auth.Identity{}, errors.New("invalid token claims")
	}
	identity := auth.Identity{UserID: uint(userID)}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	if superuser, ok := claims["superuser"].(bool); ok {
		identity.IsSuperuser = superuser
	}
	return identity, nil
}
