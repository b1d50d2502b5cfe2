package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparat-2NE1/delivery/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret")

	raw, err := issuer.Issue(KindAccess, "alice", "alice@example.com", models.RoleCustomer, time.Minute)
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "access", claims["kind"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "CUSTOMER", claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestIssueDistinctTokens(t *testing.T) {
	issuer := NewIssuer("test-secret")

	a, err := issuer.Issue(KindRefresh, "alice", "alice@example.com", models.RoleCustomer, time.Hour)
	require.NoError(t, err)
	b, err := issuer.Issue(KindRefresh, "alice", "alice@example.com", models.RoleCustomer, time.Hour)
	require.NoError(t, err)

	// Same claims issued back to back must still differ.
	assert.NotEqual(t, a, b)
}

func TestParseKind(t *testing.T) {
	issuer := NewIssuer("test-secret")

	access, err := issuer.Issue(KindAccess, "alice", "alice@example.com", models.RoleCustomer, time.Minute)
	require.NoError(t, err)

	_, err = issuer.ParseKind(access, KindAccess)
	assert.NoError(t, err)

	_, err = issuer.ParseKind(access, KindRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpired(t *testing.T) {
	issuer := NewIssuer("test-secret")

	raw, err := issuer.Issue(KindAccess, "alice", "alice@example.com", models.RoleCustomer, -time.Minute)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret-one").Issue(KindAccess, "alice", "alice@example.com", models.RoleCustomer, time.Minute)
	require.NoError(t, err)

	_, err = NewIssuer("secret-two").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := NewIssuer("test-secret").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
