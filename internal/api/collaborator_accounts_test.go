package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dmatosb/horabank/internal/models"
)

func TestCreateCollaboratorStartsAtZeroBalance(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateCollaborator: true})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := postJSON(t, app, "/api/admin/collaborators", map[string]any{
		"full_name":    "Ana Lima",
		"badge_number": "1001",
		"position":     "Operator",
		"supervisor":   "Carlos",
		"access_code":  "123456",
	}, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	var created models.Collaborator
	decodeJSONBody(t, response, &created)
	if created.Balance != 0 || created.BalanceType != models.BalanceTypeNone {
		t.Fatalf("expected zero balance and none type, got %.1f / %q", created.Balance, created.BalanceType)
	}
	if !created.IsActive {
		t.Fatal("expected new collaborator to be active")
	}
}

func TestCreateCollaboratorValidatesAccessCodeFormat(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateCollaborator: true})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	for _, code := range []string{"12345", "12345678901", "12ab56"} {
		response := postJSON(t, app, "/api/admin/collaborators", map[string]any{
			"full_name":    "Ana Lima",
			"badge_number": "1001",
			"access_code":  code,
		}, cookie)
		response.Body.Close()
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for access code %q, got %d", code, response.StatusCode)
		}
	}
}

func TestCreateCollaboratorDuplicateBadgeOrCode(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateCollaborator: true})
	createTestCollaborator(t, database, "1001", "123456")
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	duplicateBadge := postJSON(t, app, "/api/admin/collaborators", map[string]any{
		"full_name":    "Clone Badge",
		"badge_number": "1001",
		"access_code":  "654321",
	}, cookie)
	duplicateBadge.Body.Close()
	if duplicateBadge.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate badge, got %d", duplicateBadge.StatusCode)
	}

	duplicateCode := postJSON(t, app, "/api/admin/collaborators", map[string]any{
		"full_name":    "Clone Code",
		"badge_number": "1002",
		"access_code":  "123456",
	}, cookie)
	duplicateCode.Body.Close()
	if duplicateCode.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate access code, got %d", duplicateCode.StatusCode)
	}
}

func TestUpdateCollaboratorKeepsBalance(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{
		Username: "hr.admin", Password: "StrongPass1",
		CanCreateCollaborator: true, CanEnterHours: true,
	})
	collaborator := createTestCollaborator(t, database, "1001", "123456")
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")
	creditHours(t, app, cookie, collaborator.ID, 7)

	updatePath := fmt.Sprintf("/api/admin/collaborators/%d", collaborator.ID)
	update := putJSON(t, app, updatePath, map[string]any{
		"full_name":    "Ana Lima Santos",
		"badge_number": "1001",
		"position":     "Team Lead",
		"supervisor":   "Marta",
		"access_code":  "123456",
	}, cookie)
	update.Body.Close()
	if update.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", update.StatusCode)
	}

	var reloaded models.Collaborator
	if err := database.First(&reloaded, collaborator.ID).Error; err != nil {
		t.Fatalf("reload collaborator: %v", err)
	}
	if reloaded.FullName != "Ana Lima Santos" || reloaded.Supervisor != "Marta" {
		t.Fatalf("expected profile update applied, got %+v", reloaded)
	}
	if reloaded.Balance != 7 {
		t.Fatalf("expected balance preserved at 7, got %.1f", reloaded.Balance)
	}
}

func TestDeactivateCollaboratorViaUpdate(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateCollaborator: true})
	collaborator := createTestCollaborator(t, database, "1001", "123456")
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	updatePath := fmt.Sprintf("/api/admin/collaborators/%d", collaborator.ID)
	update := putJSON(t, app, updatePath, map[string]any{
		"full_name":    collaborator.FullName,
		"badge_number": collaborator.BadgeNumber,
		"access_code":  collaborator.AccessCode,
		"is_active":    false,
	}, cookie)
	update.Body.Close()
	if update.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", update.StatusCode)
	}

	login := postJSON(t, app, "/api/auth/collaborator-login", map[string]string{
		"accessCode": "123456",
	}, "")
	defer login.Body.Close()
	if login.StatusCode != http.StatusForbidden {
		t.Fatalf("expected deactivated collaborator login to return 403, got %d", login.StatusCode)
	}
}

func TestChangeAccessCodeRotatesLogin(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanChangeAccessCode: true})
	collaborator := createTestCollaborator(t, database, "1001", "123456")
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	change := postJSON(t, app, "/api/admin/change-access-code", map[string]any{
		"collaboratorId": collaborator.ID,
		"newAccessCode":  "765432",
	}, cookie)
	change.Body.Close()
	if change.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 changing access code, got %d", change.StatusCode)
	}

	oldCode := postJSON(t, app, "/api/auth/collaborator-login", map[string]string{"accessCode": "123456"}, "")
	oldCode.Body.Close()
	if oldCode.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected old code to stop working, got %d", oldCode.StatusCode)
	}

	collaboratorLogin(t, app, "765432")
}

func TestChangeAccessCodeRejectsDuplicate(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanChangeAccessCode: true})
	createTestCollaborator(t, database, "1001", "123456")
	second := createTestCollaborator(t, database, "1002", "654321")
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := postJSON(t, app, "/api/admin/change-access-code", map[string]any{
		"collaboratorId": second.ID,
		"newAccessCode":  "123456",
	}, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for code collision, got %d", response.StatusCode)
	}
}

func TestSuggestAccessCodeIsWellFormed(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanChangeAccessCode: true})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := doRequest(t, app, http.MethodGet, "/api/admin/suggest-access-code", cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var payload struct {
		AccessCode string `json:"accessCode"`
	}
	decodeJSONBody(t, response, &payload)
	if len(payload.AccessCode) != 8 {
		t.Fatalf("expected 8-digit suggestion, got %q", payload.AccessCode)
	}
	for _, char := range payload.AccessCode {
		if char < '0' || char > '9' {
			t.Fatalf("expected digits only, got %q", payload.AccessCode)
		}
	}
}
