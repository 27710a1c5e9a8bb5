package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/clientes/internal/auth"
)

func TestGeneratedKeysSignAndVerify(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateKeys(dir))

	priv, err := auth.LoadPrivateKey(filepath.Join(dir, "private.pem"))
	require.NoError(t, err, "generated private key must be readable")

	pub, err := auth.LoadPublicKey(filepath.Join(dir, "public.pem"))
	require.NoError(t, err, "generated public key must be readable")

	tkn, err := auth.NewJwtIssuer("clientes-api", time.Minute, priv).Sign("operator", time.Now())
	require.NoError(t, err)

	claims, err := auth.NewJwtValidator("clientes-api", pub).Verify(tkn.Signed)
	require.NoError(t, err)
	require.Equal(t, "operator", claims.Subject)
}
