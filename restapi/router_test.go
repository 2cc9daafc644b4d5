package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gqlschema "github.com/fleetwatch/fleetrisk-backend/graphql"
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/fleetwatch/fleetrisk-backend/risk"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// zeroRand pins the residual risk factor to 0 for deterministic scores
type zeroRand struct{}

func (zeroRand) Intn(_ int) int { return 0 }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	scorer := risk.NewScorerWithRand(risk.DefaultTable(), zeroRand{})
	fleet := services.NewFleet(scorer, zap.NewNop())
	fleet.Access.AddUser("ada", model.RoleAdmin, true)
	fleet.Access.AddUser("mira", model.RoleManager, true)
	fleet.Access.AddUser("vera", model.RoleViewer, true)
	fleet.Access.AddUser("ina", model.RoleManager, false)

	schema, err := gqlschema.CreateSchema(fleet)
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, fleet, schema)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, username string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if username != "" {
		req.Header.Set("X-Username", username)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestRoutes_CallerResolution(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/api/v1/report", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/api/v1/report", "ghost", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("inactive manager is forbidden despite role", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/api/v1/report", "ina", nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestRoutes_DeviceProvisioning(t *testing.T) {
	app := newTestApp(t)
	body := map[string]string{
		"device_id":        "light-1",
		"device_type":      "smart_light",
		"firmware_version": "1.1",
		"status":           "active",
	}

	t.Run("manager may not add devices", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/devices", "mira", body)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin adds a device and gets the scored result", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "POST", "/api/v1/devices", "ada", body)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		device := decoded["device"].(map[string]interface{})
		assert.Equal(t, "light-1", device["device_id"])
		assert.Equal(t, float64(3), device["risk_level"])
	})

	t.Run("viewer sees the device in the report", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "GET", "/api/v1/report", "vera", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, decoded["report"], "Device light-1: smart_light v1.1 - Status: active - Risk Level: 3")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/devices", "ada", map[string]string{"device_id": "x"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRoutes_RecommendationWorkflow(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/recommendations", "ada",
		map[string]string{"description": "update door_lock firmware"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("viewer may not add recommendations", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/recommendations", "vera",
			map[string]string{"description": "nope"})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin may not approve", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/recommendations/1/approve", "ada", nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("manager approves", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/recommendations/1/approve", "mira", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		_, decoded := doJSON(t, app, "GET", "/api/v1/recommendations", "vera", nil)
		assert.Contains(t, decoded["text"], "update door_lock firmware - Approved")
	})

	t.Run("out of range index is a validation failure", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "POST", "/api/v1/recommendations/10/approve", "mira", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decoded["error"], "invalid recommendation index")
	})

	t.Run("non-integer index rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/v1/recommendations/first/approve", "mira", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRoutes_AccessCheck(t *testing.T) {
	app := newTestApp(t)

	t.Run("denial is a boolean outcome, not an error", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "POST", "/api/v1/access/check", "",
			map[string]string{"username": "ada", "action": "approve_recommendation"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decoded["allowed"])
	})

	t.Run("grant", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "POST", "/api/v1/access/check", "",
			map[string]string{"username": "ada", "action": "add_device"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decoded["allowed"])
	})
}

func TestRoutes_UserProvisioning(t *testing.T) {
	app := newTestApp(t)

	t.Run("unknown role falls back to viewer", func(t *testing.T) {
		resp, decoded := doJSON(t, app, "POST", "/api/v1/users", "",
			map[string]string{"username": "sam", "role": "superuser"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "viewer", decoded["role"])
	})

	t.Run("apply from YAML body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rbac/apply/content",
			bytes.NewReader([]byte("users:\n  - username: noor\n    role: manager\n")))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		checkResp, decoded := doJSON(t, app, "POST", "/api/v1/access/check", "",
			map[string]string{"username": "noor", "action": "approve_recommendation"})
		require.Equal(t, fiber.StatusOK, checkResp.StatusCode)
		assert.Equal(t, true, decoded["allowed"])
	})
}

func TestRoutes_Statistics(t *testing.T) {
	app := newTestApp(t)

	for _, d := range []map[string]string{
		{"device_id": "a", "device_type": "door_lock", "firmware_version": "1.0", "status": "active"},     // risk 7
		{"device_id": "b", "device_type": "thermostat", "firmware_version": "1.2", "status": "inactive"},  // risk 1
		{"device_id": "c", "device_type": "smart_light", "firmware_version": "1.0", "status": "under maintenance"}, // risk 5
	} {
		resp, _ := doJSON(t, app, "POST", "/api/v1/devices", "ada", d)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, decoded := doJSON(t, app, "GET", "/api/v1/report/statistics", "vera", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := decoded["statistics"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_devices"])
	assert.Equal(t, float64(1), stats["active_devices"])
	assert.Equal(t, float64(1), stats["inactive_devices"])
	assert.Equal(t, float64(1), stats["maintenance_devices"])
	assert.Equal(t, float64(2), stats["high_risk_devices"])
	assert.Equal(t, float64(1), stats["low_risk_devices"])
	// door_lock 1.0 and smart_light 1.0 trail their newest known versions
	assert.Equal(t, float64(2), stats["outdated_firmware"])
}

func TestRoutes_GraphQL(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/devices", "ada", map[string]string{
		"device_id":        "cam-1",
		"device_type":      "security_camera",
		"firmware_version": "1.0",
		"status":           "active",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	query := map[string]interface{}{
		"query": `{ fleetStatistics { total_devices high_risk_devices } devices { device_id risk_level } }`,
	}
	gqlResp, decoded := doJSON(t, app, "POST", "/api/v1/graphql", "", query)
	require.Equal(t, fiber.StatusOK, gqlResp.StatusCode)
	require.Nil(t, decoded["errors"])

	data := decoded["data"].(map[string]interface{})
	stats := data["fleetStatistics"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_devices"])
	assert.Equal(t, float64(1), stats["high_risk_devices"])

	devices := data["devices"].([]interface{})
	require.Len(t, devices, 1)
	device := devices[0].(map[string]interface{})
	assert.Equal(t, "cam-1", device["device_id"])
	assert.Equal(t, float64(6), device["risk_level"])
}
