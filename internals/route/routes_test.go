package routes

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/databases/dbtest"
	helper "finakihub_backend/internals/helpers"
	middlewares "finakihub_backend/internals/middlewares"
	"finakihub_backend/internals/seeds"
)

func newTestApp(t *testing.T) (*fiber.App, *database.Store) {
	t.Helper()

	store := dbtest.SQLite(t)
	require.NoError(t, seeds.EnsureSchema(context.Background(), store))

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	middlewares.SetupMiddlewares(app, 5*time.Second)
	SetupRoutes(app, store, middlewares.RateLimits{})
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func register(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, raw := do(t, app, http.MethodPost, "/api/auth/register", fiber.Map{"username": username, "age": 9})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	id, _ := decode(t, raw)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestBaseRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "FinakiHub API", body["message"])
	assert.Equal(t, "running", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, raw = do(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, raw)["status"])

	resp, raw = do(t, app, http.MethodGet, "/api/db-ping", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, raw)["db"])

	resp, raw = do(t, app, http.MethodGet, "/api/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "finakihub_http_requests_total")
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	id := register(t, app, "ana")

	resp, raw := do(t, app, http.MethodPost, "/api/auth/register", fiber.Map{"username": "ana", "age": 9})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Usuario ya existe", body["message"])
	assert.Equal(t, "Usuario ya existe", body["detail"])
	assert.EqualValues(t, http.StatusBadRequest, body["code"])

	resp, raw = do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"username": "ana"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, raw)
	assert.Equal(t, id, body["id"])
	assert.EqualValues(t, 1, body["level"])
	assert.EqualValues(t, 0, body["coins"])

	resp, raw = do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"username": "nadie"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", decode(t, raw)["message"])

	// registration also creates the progress record
	resp, raw = do(t, app, http.MethodGet, "/api/progress/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, decode(t, raw)["user_id"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/auth/register", fiber.Map{"age": 9})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", decode(t, raw)["status"])
}

func TestXPLevelUpAndShop(t *testing.T) {
	app, _ := newTestApp(t)
	id := register(t, app, "ana")

	resp, raw := do(t, app, http.MethodPost, "/api/xp/add", fiber.Map{"user_id": id, "xp": 150})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, true, body["level_up"])
	assert.EqualValues(t, 2, body["new_level"])
	assert.EqualValues(t, 20, body["bonus_coins"])
	assert.EqualValues(t, 20, body["total_coins"])

	resp, raw = do(t, app, http.MethodPost, "/api/xp/add", fiber.Map{"user_id": id, "xp": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "La cantidad de XP debe ser positiva", decode(t, raw)["message"])

	resp, raw = do(t, app, http.MethodPost, "/api/shop/purchase", fiber.Map{"user_id": id, "item_id": "hat_cap", "price": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.EqualValues(t, 10, decode(t, raw)["new_coins"])

	resp, raw = do(t, app, http.MethodPost, "/api/shop/purchase", fiber.Map{"user_id": id, "item_id": "hat_cap", "price": 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya compraste este artículo", decode(t, raw)["message"])

	resp, raw = do(t, app, http.MethodPost, "/api/shop/purchase", fiber.Map{"user_id": id, "item_id": "special_diamond", "price": 100})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No tienes suficientes monedas", decode(t, raw)["message"])

	resp, raw = do(t, app, http.MethodPost, "/api/shop/equip", fiber.Map{"user_id": id, "category": "hat", "item_id": "hat_cap"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	equipped, _ := decode(t, raw)["equipped_items"].(map[string]any)
	assert.Equal(t, "hat_cap", equipped["hat"])

	resp, raw = do(t, app, http.MethodPost, "/api/shop/equip", fiber.Map{"user_id": id, "category": "zapatos", "item_id": "hat_cap"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Categoría inválida: zapatos", decode(t, raw)["message"])

	resp, raw = do(t, app, http.MethodGet, "/api/user/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, raw)
	assert.EqualValues(t, 150, body["xp"])
	assert.EqualValues(t, 10, body["coins"])
	assert.Equal(t, []any{"hat_cap"}, body["purchased_items"])
}

func TestUserNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/user/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID de usuario inválido", decode(t, raw)["message"])
}

func TestModules(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/modules/primary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("Deprecation"))
	var mods []map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &mods))
	require.Len(t, mods, 4)
	assert.Equal(t, "primaria", mods[0]["level"])

	resp, raw = do(t, app, http.MethodGet, "/api/modules/universidad", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nivel no válido", decode(t, raw)["message"])
}

func TestLemonadeRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/game/lemonade/u-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(raw))

	resp, raw = do(t, app, http.MethodPost, "/api/game/lemonade/", fiber.Map{"user_id": "u-1", "current_money": 32.5, "score": 80})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.EqualValues(t, 80, decode(t, raw)["score"])

	resp, raw = do(t, app, http.MethodGet, "/api/game/lemonade/u-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.EqualValues(t, 32.5, body["current_money"])
	assert.EqualValues(t, 5, body["total_days"])
}
