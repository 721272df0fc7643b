package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/db"
	"github.com/terraincognita07/worktime/internal/models"
	"github.com/terraincognita07/worktime/internal/qrcode"
	"github.com/terraincognita07/worktime/internal/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testSecretKey = "test-secret-key-with-enough-entropy"
	testSiteURL   = "http://worktime.test"
	testPassword  = "StrongPass1"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *testClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *testClock) Set(now time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = now
}

type testEnv struct {
	app      *fiber.App
	database *gorm.DB
	clock    *testClock
	auth     *services.AuthService
	repos    *db.Repositories
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithOptions(t, false)
}

func newTestEnvWithOptions(t *testing.T, cookieSecure bool) *testEnv {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "worktime-api-test.db")
	database, err := db.OpenSQLite(databasePath, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	clock := &testClock{now: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)}
	handler, err := NewHandler(database, Options{
		SecretKey:    testSecretKey,
		CookieSecure: cookieSecure,
		Location:     time.UTC,
		SiteURL:      testSiteURL,
		QREncoder:    qrcode.NewEncoder(qrcode.DefaultSize),
		Logger:       zap.NewNop(),
		Clock:        clock.Now,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	repos := db.NewRepositories(database)
	return &testEnv{
		app:      app,
		database: database,
		clock:    clock,
		auth:     services.NewAuthService(repos.Users, repos.Organizations).WithHashCost(bcrypt.MinCost),
		repos:    repos,
	}
}

func (env *testEnv) createUser(t *testing.T, email string) models.User {
	t.Helper()
	user, err := env.auth.CreateUser(context.Background(), services.AccountInput{
		Email:     email,
		Password:  testPassword,
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (env *testEnv) createStaff(t *testing.T, email string) models.User {
	t.Helper()
	user, err := env.auth.CreateStaffUser(context.Background(), services.AccountInput{
		Email:    email,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("create staff %s: %v", email, err)
	}
	return user
}

func (env *testEnv) createOrganization(t *testing.T, name string, email string) models.Organization {
	t.Helper()
	organization := models.Organization{Name: name, Email: email}
	if err := env.repos.Organizations.Create(context.Background(), &organization); err != nil {
		t.Fatalf("create organization %s: %v", name, err)
	}
	return organization
}

func (env *testEnv) addMember(t *testing.T, email string, organizationID uint) {
	t.Helper()
	if err := env.auth.AddMember(context.Background(), email, organizationID); err != nil {
		t.Fatalf("add member %s: %v", email, err)
	}
}

func (env *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	response := env.do(t, http.MethodPost, "/login/", `{"email":"`+email+`","password":"`+testPassword+`"}`, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusAccepted {
		t.Fatalf("expected login status 202, got %d", response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie after login")
	}
	return cookie.Value
}

func (env *testEnv) do(t *testing.T, method string, target string, body string, session string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		request.Header.Set("Cookie", authCookieName+"="+session)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
