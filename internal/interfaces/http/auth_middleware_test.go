package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/application/auth"
	apphttp "github.com/jhoicas/directorio-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/directorio-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "directorio-test"
	testExpMin    = 60
)

// buildIdentityApp expone en /me el claim que dejó IdentityMiddleware.
func buildIdentityApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.IdentityMiddleware(auth.NewAuthenticator(testJWTSecret)), func(c *fiber.Ctx) error {
		claim := apphttp.GetClaim(c)
		if claim == nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"subject": claim.Subject, "role": string(claim.Role)})
	})
	return app
}

func tokenFor(t *testing.T, subject, userType string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, subject, userType, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func getMe(t *testing.T, app *fiber.App, headers map[string]string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el middleware nunca rechaza")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestIdentityMiddleware_BearerToken(t *testing.T) {
	body := getMe(t, buildIdentityApp(), map[string]string{
		"Authorization": "Bearer " + tokenFor(t, testSubject, "company"),
	})
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, "company", body["role"])
}

func TestIdentityMiddleware_HeaderLegacy(t *testing.T) {
	body := getMe(t, buildIdentityApp(), map[string]string{
		"token": tokenFor(t, testSubject, "manager"),
	})
	assert.Equal(t, "manager", body["role"])
}

func TestIdentityMiddleware_EsquemaNoBearerUsaHeaderLegacy(t *testing.T) {
	app := buildIdentityApp()
	body := getMe(t, app, map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
		"token":         tokenFor(t, testSubject, "manager"),
	})
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, "manager", body["role"])

	// Bearer manda sobre el header legacy
	body = getMe(t, app, map[string]string{
		"Authorization": "Bearer " + tokenFor(t, testSubject, "company"),
		"token":         tokenFor(t, testSubject, "manager"),
	})
	assert.Equal(t, "company", body["role"])
}

func TestIdentityMiddleware_SubjectEnMayusculasSeCanoniza(t *testing.T) {
	const id = "8f14e45f-ceea-4e7a-9c1b-3d2a5b6c7d8e"
	body := getMe(t, buildIdentityApp(), map[string]string{
		"Authorization": "Bearer " + tokenFor(t, strings.ToUpper(id), "company"),
	})
	assert.Equal(t, id, body["subject"])
}

func TestIdentityMiddleware_SinTokenEsAnonimo(t *testing.T) {
	body := getMe(t, buildIdentityApp(), nil)
	assert.Equal(t, true, body["anonymous"])
}

func TestIdentityMiddleware_TokenInvalidoEsAnonimo(t *testing.T) {
	app := buildIdentityApp()
	for _, h := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer "} {
		body := getMe(t, app, map[string]string{"Authorization": h})
		assert.Equal(t, true, body["anonymous"], h)
	}
}

func TestIdentityMiddleware_TokenVencidoEsAnonimo(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, "user", testIssuer, -1)
	require.NoError(t, err)
	body := getMe(t, buildIdentityApp(), map[string]string{"Authorization": "Bearer " + tok})
	assert.Equal(t, true, body["anonymous"])
}
