package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "horabank-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler, err := NewHandler(database, testSecretKey, false)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

type adminFixture struct {
	FullName              string
	Username              string
	Password              string
	CanCreateCollaborator bool
	CanCreateAdmin        bool
	CanEnterHours         bool
	CanChangeAccessCode   bool
	IsProtected           bool
}

func createTestAdmin(t *testing.T, database *gorm.DB, fixture adminFixture) models.Administrator {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(fixture.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash test password: %v", err)
	}

	fullName := fixture.FullName
	if fullName == "" {
		fullName = "Test Admin"
	}

	admin := models.Administrator{
		FullName:              fullName,
		Username:              fixture.Username,
		PasswordHash:          string(passwordHash),
		CanCreateCollaborator: fixture.CanCreateCollaborator,
		CanCreateAdmin:        fixture.CanCreateAdmin,
		CanEnterHours:         fixture.CanEnterHours,
		CanChangeAccessCode:   fixture.CanChangeAccessCode,
		IsProtected:           fixture.IsProtected,
		CreatedAt:             time.Now(),
	}
	if err := database.Create(&admin).Error; err != nil {
		t.Fatalf("create test admin: %v", err)
	}
	return admin
}

func createTestCollaborator(t *testing.T, database *gorm.DB, badgeNumber string, accessCode string) models.Collaborator {
	t.Helper()

	collaborator := models.Collaborator{
		FullName:    "Collaborator " + badgeNumber,
		BadgeNumber: badgeNumber,
		Position:    "Operator",
		Shift:       "Morning",
		Supervisor:  "Carlos",
		AccessCode:  accessCode,
		Balance:     0,
		BalanceType: models.BalanceTypeNone,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := database.Create(&collaborator).Error; err != nil {
		t.Fatalf("create test collaborator: %v", err)
	}
	return collaborator
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, cookie string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func putJSON(t *testing.T, app *fiber.App, path string, payload any, cookie string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("PUT %s failed: %v", path, err)
	}
	return response
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("unmarshal response %q: %v", string(body), err)
	}
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("expected auth cookie in response")
	return ""
}

func adminLogin(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	response := postJSON(t, app, "/api/auth/admin-login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("admin login returned %d", response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func collaboratorLogin(t *testing.T, app *fiber.App, accessCode string) string {
	t.Helper()

	response := postJSON(t, app, "/api/auth/collaborator-login", map[string]string{
		"accessCode": accessCode,
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("collaborator login returned %d", response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func creditHours(t *testing.T, app *fiber.App, adminCookie string, collaboratorID uint, hours float64) {
	t.Helper()

	response := postJSON(t, app, "/api/admin/time-entry", map[string]any{
		"collaboratorId": collaboratorID,
		"hoursChange":    hours,
		"description":    "test credit",
	}, adminCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("time entry returned %d", response.StatusCode)
	}
}
