package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/policy"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/search"
	"github.com/sparat-2NE1/delivery/internal/token"
)

// UserService implements the account lifecycle: signup, authentication, token
// refresh, lookup, search, profile and role updates, and soft deletion.
type UserService struct {
	db         *gorm.DB
	issuer     *token.Issuer
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewUserService(db *gorm.DB, issuer *token.Issuer, accessTTL, refreshTTL time.Duration) *UserService {
	return &UserService{db: db, issuer: issuer, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Signup registers a new CUSTOMER account. Username uniqueness is global:
// soft-deleted rows count too, so the check runs unscoped and the unique index
// on username backs it up under concurrent signups.
func (s *UserService) Signup(req *dto.SignupRequest) (*dto.UserResponse, error) {
	var count int64
	if err := s.db.Unscoped().Model(&models.User{}).
		Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w : %s", ErrUsernameTaken, req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: string(hash),
		Role:     models.RoleCustomer,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w : %s", ErrUsernameTaken, req.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// Authenticate verifies the credentials and issues an access/refresh token
// pair. A missing account and a wrong password produce the same error, so a
// caller cannot probe for usernames.
func (s *UserService) Authenticate(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(&user)
}

// Refresh rotates a refresh token: the presented token is revoked and a fresh
// pair is issued.
func (s *UserService) Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.issuer.ParseKind(req.RefreshToken, token.KindRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var stored models.RefreshToken
	if err := s.db.Where("token = ? AND revoked = false", req.RefreshToken).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	if err := s.db.Model(&stored).Update("revoked", true).Error; err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	username, _ := claims["username"].(string)
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokenPair(&user)
}

// Logout revokes the presented refresh token.
func (s *UserService) Logout(req *dto.LogoutRequest) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token = ?", req.RefreshToken).
		Update("revoked", true).Error
}

// GetByID returns the public representation of an active account.
func (s *UserService) GetByID(id uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrUserNotFound, id)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// Search runs a filtered, sorted, paginated account listing. An empty result
// page is reported as ErrUsersNotFound; see DESIGN.md for why this is kept.
func (s *UserService) Search(req search.Request) (*dto.Page[dto.UserResponse], error) {
	order, err := search.OrderBy(req.SortBy, req.Order)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.User{}).Scopes(search.Filter(req)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := s.db.Scopes(search.Filter(req)).
		Order(order).
		Scopes(search.Paginate(req.Page, req.Size)).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	if len(users) == 0 {
		return nil, ErrUsersNotFound
	}

	content := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		content = append(content, dto.NewUserResponse(&users[i]))
	}

	return &dto.Page[dto.UserResponse]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
	}, nil
}

// UpdateProfile replaces email, nickname and password of the account. The
// actor must own the account or be a MASTER, and must present the account's
// current password.
func (s *UserService) UpdateProfile(id uuid.UUID, actor principal.Principal, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrUserNotFound, id)
	}

	if !policy.Allows(actor, user.Username, policy.UpdateProfile) {
		return nil, ErrForbidden
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return nil, ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hash)
	user.Email = req.Email
	user.Nickname = req.Nickname

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// UpdateRole replaces the account's role. MASTER only; the policy runs before
// the target is even loaded.
func (s *UserService) UpdateRole(id uuid.UUID, actor principal.Principal, req *dto.RoleUpdateRequest) (*dto.UserResponse, error) {
	if !policy.Allows(actor, "", policy.UpdateRole) {
		return nil, ErrForbidden
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, req.Role)
	}

	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrUserNotFound, id)
	}

	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// SoftDelete marks the account deleted, records the deleting actor and
// revokes every outstanding refresh token in the same transaction.
func (s *UserService) SoftDelete(id uuid.UUID, actor principal.Principal) error {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return fmt.Errorf("%w by id : %s", ErrUserNotFound, id)
	}

	if !policy.Allows(actor, user.Username, policy.Delete) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("deleted_by", actor.Username).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return tx.Model(&models.RefreshToken{}).
			Where("user_id = ? AND revoked = false", user.ID).
			Update("revoked", true).Error
	})
}

func (s *UserService) issueTokenPair(user *models.User) (*dto.TokenResponse, error) {
	access, err := s.issuer.Issue(token.KindAccess, user.Username, user.Email, user.Role, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.issuer.Issue(token.KindRefresh, user.Username, user.Email, user.Role, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}
