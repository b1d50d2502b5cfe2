package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/search"
)

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	resp := signupUser(t, svc, "alice")
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, models.RoleCustomer, resp.Role)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "password1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password1")))
}

func TestSignupDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	signupUser(t, svc, "alice")

	_, err := svc.Signup(&dto.SignupRequest{
		Username: "alice", Email: "other@example.com", Password: "password2", Nickname: "Al",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, "username already exists : alice", err.Error())
}

func TestSignupUniquenessIncludesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	bob := signupUser(t, svc, "bob")
	require.NoError(t, svc.SoftDelete(bob.ID, asMaster("root")))

	_, err := svc.Signup(&dto.SignupRequest{
		Username: "bob", Email: "bob2@example.com", Password: "password2", Nickname: "Bob",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	resp, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticateFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	// Wrong password and unknown username are indistinguishable.
	_, wrongPw := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "nope"})
	_, unknown := svc.Authenticate(&dto.LoginRequest{Username: "ghost", Password: "password1"})
	require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())

	// No token is persisted on failure.
	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAuthenticateSoftDeletedAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")
	require.NoError(t, svc.SoftDelete(alice.ID, asCustomer("alice")))

	_, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	first, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token was revoked; replaying it fails.
	var old models.RefreshToken
	require.NoError(t, db.Where("token = ?", first.RefreshToken).First(&old).Error)
	assert.True(t, old.Revoked)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	pair, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: pair.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	pair, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: pair.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	got, err := svc.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchSortedDescending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"alice", "bob", "carol"} {
		u := models.User{
			ID:        uuid.New(),
			Username:  name,
			Email:     name + "@example.com",
			Password:  "hash",
			Role:      models.RoleCustomer,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&u).Error)
	}

	page, err := svc.Search(search.Request{SortBy: "createdAt", Order: "desc", Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, "carol", page.Content[0].Username)
	assert.Equal(t, "alice", page.Content[2].Username)
}

func TestSearchInvalidSortBy(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	_, err := svc.Search(search.Request{SortBy: "invalidField"})
	assert.ErrorIs(t, err, search.ErrInvalidSortBy)
}

func TestSearchEmptyResultIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")

	_, err := svc.Search(search.Request{Username: "nosuchuser", SortBy: "createdAt"})
	assert.ErrorIs(t, err, ErrUsersNotFound)
}

func TestSearchEmailFilterMatchesUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)
	signupUser(t, svc, "alice")
	signupUser(t, svc, "bob")

	page, err := svc.Search(search.Request{Email: "ali", SortBy: "createdAt"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "alice", page.Content[0].Username)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	updated, err := svc.UpdateProfile(alice.ID, asCustomer("alice"), &dto.UserUpdateRequest{
		CurrentPassword: "password1",
		NewPassword:     "password2",
		Email:           "new@example.com",
		Nickname:        "Allie",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Allie", updated.Nickname)

	// The new password is live.
	_, err = svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password2"})
	assert.NoError(t, err)
	_, err = svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileDeniedForStranger(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	bob := signupUser(t, svc, "bob")
	signupUser(t, svc, "carol")

	_, err := svc.UpdateProfile(bob.ID, asCustomer("carol"), &dto.UserUpdateRequest{
		CurrentPassword: "password1", NewPassword: "password2",
		Email: "x@example.com", Nickname: "X",
	})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "Access denied.", err.Error())
}

func TestUpdateProfileWrongCurrentPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	_, err := svc.UpdateProfile(alice.ID, asCustomer("alice"), &dto.UserUpdateRequest{
		CurrentPassword: "wrong", NewPassword: "password2",
		Email: "x@example.com", Nickname: "X",
	})
	require.ErrorIs(t, err, ErrIncorrectPassword)
	assert.Equal(t, "Incorrect password.", err.Error())
}

func TestUpdateProfileByMaster(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	// A MASTER passes the ownership gate but still needs the account's
	// current password.
	_, err := svc.UpdateProfile(alice.ID, asMaster("root"), &dto.UserUpdateRequest{
		CurrentPassword: "password1", NewPassword: "password2",
		Email: "reset@example.com", Nickname: "Reset",
	})
	assert.NoError(t, err)
}

func TestUpdateRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	// Non-MASTER actors are rejected regardless of target.
	_, err := svc.UpdateRole(alice.ID, asManager("bob"), &dto.RoleUpdateRequest{Role: "MANAGER"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.UpdateRole(alice.ID, asCustomer("alice"), &dto.RoleUpdateRequest{Role: "MANAGER"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateRole(alice.ID, asMaster("root"), &dto.RoleUpdateRequest{Role: "MANAGER"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, updated.Role)
}

func TestUpdateRoleInvalidValue(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")

	_, err := svc.UpdateRole(alice.ID, asMaster("root"), &dto.RoleUpdateRequest{Role: "SUPERADMIN"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	alice := signupUser(t, svc, "alice")
	_, err := svc.Authenticate(&dto.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(alice.ID, asManager("bob")))

	// Marker and deleting actor are recorded on the row.
	var raw models.User
	require.NoError(t, db.Unscoped().Where("id = ?", alice.ID).First(&raw).Error)
	assert.True(t, raw.DeletedAt.Valid)
	require.NotNil(t, raw.DeletedBy)
	assert.Equal(t, "bob", *raw.DeletedBy)

	// Deleted accounts disappear from lookups.
	_, err = svc.GetByID(alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Outstanding refresh tokens were revoked in the same transaction.
	var live int64
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", alice.ID).
		Count(&live).Error)
	assert.EqualValues(t, 0, live)
}

func TestSoftDeleteDeniedForStranger(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	bob := signupUser(t, svc, "bob")
	signupUser(t, svc, "carol")

	err := svc.SoftDelete(bob.ID, asCustomer("carol"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSoftDeleteMissingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	err := svc.SoftDelete(uuid.New(), asMaster("root"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
