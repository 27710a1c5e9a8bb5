package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJwtRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	issuer := NewJwtIssuer("clientes-api", time.Minute, priv)
	validator := NewJwtValidator("clientes-api", pub)

	t.Log("token signed by issuer is accepted")
	{
		tkn, err := issuer.Sign("operator", time.Now())
		require.NoError(t, err, "failed to sign token")

		claims, err := validator.Verify(tkn.Signed)
		require.NoError(t, err, "valid token rejected")
		require.Equal(t, "operator", claims.Subject)
	}

	t.Log("expired token is rejected")
	{
		tkn, err := issuer.Sign("operator", time.Now().Add(-time.Hour))
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(tkn.Signed)
		require.Error(t, err, "expired token accepted")
	}

	t.Log("token of foreign issuer is rejected")
	{
		tkn, err := NewJwtIssuer("someone-else", time.Minute, priv).Sign("operator", time.Now())
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(tkn.Signed)
		require.Error(t, err, "foreign token accepted")
	}

	t.Log("token signed with another key is rejected")
	{
		_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		tkn, err := NewJwtIssuer("clientes-api", time.Minute, otherPriv).Sign("operator", time.Now())
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(tkn.Signed)
		require.Error(t, err, "token with wrong signature accepted")
	}
}
