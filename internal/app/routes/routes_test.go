package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"room-manager/internal/app/middleware"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
	"room-manager/internal/infrastructure/database"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:     "test-secret",
		SessionTTL:       time.Hour,
		FeaturePayments:  true,
		FeatureContracts: true,
		CORSOrigins:      []string{"*"},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	_, err = database.Seed(context.Background(), db, time.Now().UTC())
	require.NoError(t, err)

	c := container.NewServiceContainer(db, cfg, nil)
	t.Cleanup(func() {
		c.Close()
		_ = sqlDB.Close()
	})
	return SetupRouter(c)
}

func do(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r http.Handler, email string) *http.Cookie {
	t.Helper()
	rec := do(r, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+database.DemoPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			assert.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestPublicRoutes(t *testing.T) {
	r := newTestServer(t, testConfig())

	rec := do(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", gjson.Get(rec.Body.String(), "data.message").String())

	rec = do(r, http.MethodGet, "/api/health/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, gjson.Get(rec.Body.String(), "data.database.max_open_connections").Int())

	rec = do(r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gjson.Null, gjson.Get(rec.Body.String(), "data.user").Type)

	rec = do(r, http.MethodGet, "/api/rooms", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.EqualValues(t, code.ErrTokenInvalid, gjson.Get(rec.Body.String(), "code").Int())
}

func TestSwaggerDocument(t *testing.T) {
	r := newTestServer(t, testConfig())

	rec := do(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "Room Manager API", gjson.Get(body, "info.title").String())
	assert.Equal(t, "/api", gjson.Get(body, "basePath").String())
	assert.True(t, gjson.Get(body, "paths./dashboard.get.security.0.BearerAuth").Exists())
	assert.Equal(t, "apiKey", gjson.Get(body, "securityDefinitions.BearerAuth.type").String())
}

func TestLoginFailures(t *testing.T) {
	r := newTestServer(t, testConfig())

	rec := do(r, http.MethodPost, "/api/auth/login", `{"email":"admin@roommanager.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.EqualValues(t, code.ErrUserPasswordIncorrect, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodPost, "/api/auth/login", `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, code.ErrValidation, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodPost, "/api/auth/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, code.ErrBind, gjson.Get(rec.Body.String(), "code").Int())
}

func TestMeAndLogout(t *testing.T) {
	r := newTestServer(t, testConfig())
	session := login(t, r, "maria@email.com")

	rec := do(r, http.MethodGet, "/api/auth/me", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "maria@email.com", gjson.Get(body, "data.user.email").String())
	assert.Equal(t, "Calle Mayor 15", gjson.Get(body, "data.user.tenant.room.property.name").String())
	assert.False(t, gjson.Get(body, "data.user.password").Exists())

	rec = do(r, http.MethodPost, "/api/auth/logout", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, middleware.SessionCookie, cleared[0].Name)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestRegisterRoles(t *testing.T) {
	r := newTestServer(t, testConfig())

	rec := do(r, http.MethodPost, "/api/auth/register", `{"email":"new@email.com","password":"secret1","name":"Nuevo"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "tenant", gjson.Get(rec.Body.String(), "data.role").String())

	rec = do(r, http.MethodPost, "/api/auth/register", `{"email":"new@email.com","password":"secret1"}`)
	assert.EqualValues(t, code.ErrUserAlreadyExist, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodPost, "/api/auth/register", `{"email":"boss@email.com","password":"secret1","role":"admin"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(r, http.MethodPost, "/api/auth/register", `{"email":"boss@email.com","password":"secret1","role":"admin"}`, login(t, r, "admin@roommanager.com"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(r, http.MethodPost, "/api/auth/register", `{"email":"x@email.com","password":"secret1","role":"owner"}`)
	assert.EqualValues(t, code.ErrValidation, gjson.Get(rec.Body.String(), "code").Int())
}

func TestAdminOnlyMutations(t *testing.T) {
	r := newTestServer(t, testConfig())
	tenant := login(t, r, "maria@email.com")

	rec := do(r, http.MethodGet, "/api/properties", "", tenant)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, gjson.Get(rec.Body.String(), "data").Array(), 3)

	rec = do(r, http.MethodPost, "/api/properties", `{"name":"x","address":"y","city":"z"}`, tenant)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.EqualValues(t, code.ErrForbidden, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodGet, "/api/dashboard", "", tenant)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoomListing(t *testing.T) {
	r := newTestServer(t, testConfig())
	admin := login(t, r, "admin@roommanager.com")

	rec := do(r, http.MethodGet, "/api/rooms", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	rooms := gjson.Get(rec.Body.String(), "data").Array()
	require.Len(t, rooms, 7)
	assert.Equal(t, "Calle Mayor 15", rooms[0].Get("property.name").String())
	assert.Equal(t, "101", rooms[0].Get("number").String())
	assert.Equal(t, "Plaza España 8", rooms[6].Get("property.name").String())
	assert.Len(t, rooms[0].Get("tenants").Array(), 1)

	rec = do(r, http.MethodGet, "/api/rooms?status=available", "", admin)
	assert.Len(t, gjson.Get(rec.Body.String(), "data").Array(), 2)

	rec = do(r, http.MethodPost, "/api/rooms", `{"number":"104","price":"cheap","propertyId":"x"}`, admin)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.EqualValues(t, code.ErrParse, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodPost, "/api/rooms", `{"number":"104","price":400,"propertyId":"missing"}`, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, code.ErrForeignKeyViolation, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodGet, "/api/rooms/missing", "", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.EqualValues(t, code.ErrRoomNotFound, gjson.Get(rec.Body.String(), "code").Int())
}

func TestIncidentLifecycleOverHTTP(t *testing.T) {
	r := newTestServer(t, testConfig())
	admin := login(t, r, "admin@roommanager.com")
	tenant := login(t, r, "maria@email.com")

	rec := do(r, http.MethodGet, "/api/auth/me", "", tenant)
	roomID := gjson.Get(rec.Body.String(), "data.user.tenant.roomId").String()
	tenantID := gjson.Get(rec.Body.String(), "data.user.tenantId").String()
	require.NotEmpty(t, roomID)

	rec = do(r, http.MethodPost, "/api/incidents", `{"title":"Bombilla fundida","roomId":"`+roomID+`"}`, tenant)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := rec.Body.String()
	id := gjson.Get(body, "data.id").String()
	assert.Equal(t, "open", gjson.Get(body, "data.status").String())
	assert.Equal(t, "medium", gjson.Get(body, "data.priority").String())
	assert.Equal(t, "other", gjson.Get(body, "data.category").String())
	assert.Equal(t, tenantID, gjson.Get(body, "data.tenantId").String())

	rec = do(r, http.MethodPost, "/api/incidents/"+id+"/updates", `{"message":"Electricista asignado","status":"in_progress"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "in_progress", gjson.Get(rec.Body.String(), "data.status").String())

	rec = do(r, http.MethodPost, "/api/incidents/"+id+"/updates", `{"message":"?","status":"reopened"}`, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, code.ErrValidation, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodPost, "/api/incidents/missing/updates", `{"message":"x"}`, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodGet, "/api/incidents/"+id, "", tenant)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Equal(t, "in_progress", gjson.Get(body, "data.status").String())
	assert.Len(t, gjson.Get(body, "data.updates").Array(), 1)
	assert.Equal(t, "Calle Mayor 15", gjson.Get(body, "data.room.property.name").String())

	rec = do(r, http.MethodGet, "/api/incidents?status=in_progress", "", admin)
	assert.Len(t, gjson.Get(rec.Body.String(), "data").Array(), 2)

	rec = do(r, http.MethodDelete, "/api/incidents/"+id, "", tenant)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(r, http.MethodDelete, "/api/incidents/"+id, "", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentsAndDashboard(t *testing.T) {
	r := newTestServer(t, testConfig())
	admin := login(t, r, "admin@roommanager.com")

	rec := do(r, http.MethodGet, "/api/payments?status=paid", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, gjson.Get(rec.Body.String(), "data").Array(), 10)

	rec = do(r, http.MethodPost, "/api/payments", `{"amount":100,"dueDate":"05/03/2025","tenantId":"x"}`, admin)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.EqualValues(t, code.ErrParse, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodGet, "/api/dashboard", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.EqualValues(t, 3, gjson.Get(body, "data.overview.totalProperties").Int())
	assert.EqualValues(t, 7, gjson.Get(body, "data.overview.totalRooms").Int())
	assert.EqualValues(t, 5, gjson.Get(body, "data.overview.totalTenants").Int())
	assert.EqualValues(t, 5, gjson.Get(body, "data.rooms.occupied").Int())
	assert.EqualValues(t, 20, gjson.Get(body, "data.payments.total").Int())
	assert.EqualValues(t, 5, gjson.Get(body, "data.contracts.active").Int())
	assert.Len(t, gjson.Get(body, "data.recentIncidents").Array(), 4)

	rec = do(r, http.MethodGet, "/api/dashboard?asOf=yesterday", "", admin)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOptionalModulesDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.FeaturePayments = false
	cfg.FeatureContracts = false
	r := newTestServer(t, cfg)
	admin := login(t, r, "admin@roommanager.com")

	rec := do(r, http.MethodGet, "/api/payments", "", admin)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.EqualValues(t, code.ErrDependencyUnavailable, gjson.Get(rec.Body.String(), "code").Int())

	rec = do(r, http.MethodGet, "/api/contracts", "", admin)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(r, http.MethodGet, "/api/dashboard", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.EqualValues(t, 0, gjson.Get(body, "data.payments.total").Int())
	assert.True(t, gjson.Get(body, "data.payments.upcomingPayments").IsArray())
	assert.EqualValues(t, 0, gjson.Get(body, "data.contracts.active").Int())
	assert.EqualValues(t, 3, gjson.Get(body, "data.overview.totalProperties").Int())
}
