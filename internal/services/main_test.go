package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.DeliveryAddress{},
		&models.Store{},
		&models.Product{},
		&models.Region{},
	))
	return db
}

func newTestUserService(db *gorm.DB) *UserService {
	issuer := token.NewIssuer("test-secret")
	return NewUserService(db, issuer, 15*time.Minute, 24*time.Hour)
}

func signupUser(t *testing.T, svc *UserService, username string) *dto.UserResponse {
	t.Helper()
	resp, err := svc.Signup(&dto.SignupRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password1",
		Nickname: username,
	})
	require.NoError(t, err)
	return resp
}

func asCustomer(username string) principal.Principal {
	return principal.Principal{Username: username, Role: models.RoleCustomer}
}

func asManager(username string) principal.Principal {
	return principal.Principal{Username: username, Role: models.RoleManager}
}

func asMaster(username string) principal.Principal {
	return principal.Principal{Username: username, Role: models.RoleMaster}
}
