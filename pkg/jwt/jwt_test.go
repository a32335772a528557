package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/offerdesk-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testIdentity = pkgjwt.Identity{
	ID:           "user-1",
	Role:         "Admin",
	Organisation: "org-1",
	Email:        "hr@acme.test",
	Name:         "Ana HR",
}

func TestGenerateAndParse_ConIdentidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "offerdesk", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, "offerdesk", tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, *id)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, "", tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", "", tok)
	assert.Error(t, err)
}

func TestParse_IssuerDistinto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, "offerdesk", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testIdentity, "", 60)
	assert.Error(t, err)
}
