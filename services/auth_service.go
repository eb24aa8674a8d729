package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/roles"
	"littlelemon/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Profile struct {
	ID        uint     `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
}

// Register สร้าง user ใหม่ (role = customer เสมอ)
func (s *AuthService) Register(ctx context.Context, in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(ctx context.Context, in *LoginIn) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtTTL)
}

// ResolveActor โหลด user + group ครั้งเดียวต่อ request
func (s *AuthService) ResolveActor(ctx context.Context, userID uint) (*roles.Actor, error) {
	user, err := s.userRepo.FindWithGroups(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &roles.Actor{
		UserID:   user.ID,
		Username: user.Username,
		Caps:     roles.Resolve(user.IsAdmin, user.GroupNames()),
	}, nil
}

// ParseToken ใช้โดย middleware
func (s *AuthService) ParseToken(token string) (*utils.Claims, error) {
	return utils.ParseToken(token, s.jwtSecret)
}

func (s *AuthService) Me(ctx context.Context, actor *roles.Actor) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &Profile{
		ID: user.ID, Username: user.Username, Email: user.Email,
		FirstName: user.FirstName, LastName: user.LastName,
		Roles: actor.Caps.Names(),
	}, nil
}
