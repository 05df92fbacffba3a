package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dmatosb/horabank/internal/models"
)

func TestCreateAdministrator(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateAdmin: true})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := postJSON(t, app, "/api/admin/administrators", map[string]any{
		"full_name":       "Second Admin",
		"username":        "second.admin",
		"password":        "AnotherPass1",
		"can_enter_hours": true,
	}, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	var created models.Administrator
	decodeJSONBody(t, response, &created)
	if created.Username != "second.admin" {
		t.Fatalf("expected username second.admin, got %q", created.Username)
	}
	if !created.CanEnterHours || created.CanCreateAdmin {
		t.Fatal("expected only the requested flag to be set")
	}
	if created.IsProtected {
		t.Fatal("expected API-created admins to never be protected")
	}

	second := adminLogin(t, app, "second.admin", "AnotherPass1")
	me := doRequest(t, app, http.MethodGet, "/api/admin/me", second)
	defer me.Body.Close()
	if me.StatusCode != http.StatusOK {
		t.Fatalf("expected new admin to log in, got %d", me.StatusCode)
	}
}

func TestCreateAdministratorRequiresFlag(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "limited.admin", Password: "StrongPass1", CanEnterHours: true})
	cookie := adminLogin(t, app, "limited.admin", "StrongPass1")

	response := postJSON(t, app, "/api/admin/administrators", map[string]any{
		"full_name": "Nope",
		"username":  "nope.admin",
		"password":  "AnotherPass1",
	}, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without create-admin flag, got %d", response.StatusCode)
	}
}

func TestCreateAdministratorDuplicateUsername(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateAdmin: true})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := postJSON(t, app, "/api/admin/administrators", map[string]any{
		"full_name": "Clone",
		"username":  "hr.admin",
		"password":  "AnotherPass1",
	}, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", response.StatusCode)
	}
}

func TestProtectedAdministratorIsImmutableOverAPI(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	protected := createTestAdmin(t, database, adminFixture{Username: "root.admin", Password: "StrongPass1", IsProtected: true})
	cookie := adminLogin(t, app, "root.admin", "StrongPass1")

	updatePath := fmt.Sprintf("/api/admin/administrators/%d", protected.ID)
	update := putJSON(t, app, updatePath, map[string]any{
		"full_name": "Renamed",
		"username":  "renamed.admin",
	}, cookie)
	update.Body.Close()
	if update.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 updating protected admin, got %d", update.StatusCode)
	}

	remove := doRequest(t, app, http.MethodDelete, updatePath, cookie)
	remove.Body.Close()
	if remove.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 deleting protected admin, got %d", remove.StatusCode)
	}

	var reloaded models.Administrator
	if err := database.First(&reloaded, protected.ID).Error; err != nil {
		t.Fatalf("reload protected admin: %v", err)
	}
	if reloaded.Username != "root.admin" {
		t.Fatalf("expected protected admin untouched, got username %q", reloaded.Username)
	}
}

func TestUpdateAndDeleteRegularAdministrator(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateAdmin: true})
	target := createTestAdmin(t, database, adminFixture{Username: "target.admin", Password: "StrongPass1"})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	updatePath := fmt.Sprintf("/api/admin/administrators/%d", target.ID)
	update := putJSON(t, app, updatePath, map[string]any{
		"full_name":       "Renamed Admin",
		"username":        "renamed.admin",
		"can_enter_hours": true,
	}, cookie)
	update.Body.Close()
	if update.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", update.StatusCode)
	}

	var reloaded models.Administrator
	if err := database.First(&reloaded, target.ID).Error; err != nil {
		t.Fatalf("reload admin: %v", err)
	}
	if reloaded.Username != "renamed.admin" || !reloaded.CanEnterHours {
		t.Fatalf("expected update applied, got %+v", reloaded)
	}

	remove := doRequest(t, app, http.MethodDelete, updatePath, cookie)
	remove.Body.Close()
	if remove.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", remove.StatusCode)
	}

	missing := doRequest(t, app, http.MethodDelete, updatePath, cookie)
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 deleting again, got %d", missing.StatusCode)
	}
}

func TestAdminSelfOmitsPasswordHash(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1"})
	cookie := adminLogin(t, app, "hr.admin", "StrongPass1")

	response := doRequest(t, app, http.MethodGet, "/api/admin/me", cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var payload map[string]any
	decodeJSONBody(t, response, &payload)
	if _, present := payload["password_hash"]; present {
		t.Fatal("expected password hash to stay out of API payloads")
	}
	if payload["username"] != "hr.admin" {
		t.Fatalf("expected own record, got %v", payload["username"])
	}
}

func TestListAdministratorsRequiresFlag(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, adminFixture{Username: "hr.admin", Password: "StrongPass1", CanCreateAdmin: true})
	createTestAdmin(t, database, adminFixture{Username: "limited.admin", Password: "StrongPass1"})

	privileged := adminLogin(t, app, "hr.admin", "StrongPass1")
	listResponse := doRequest(t, app, http.MethodGet, "/api/admin/administrators", privileged)
	if listResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResponse.StatusCode)
	}
	var list struct {
		Administrators []models.Administrator `json:"administrators"`
	}
	decodeJSONBody(t, listResponse, &list)
	if len(list.Administrators) != 2 {
		t.Fatalf("expected 2 administrators, got %d", len(list.Administrators))
	}

	limited := adminLogin(t, app, "limited.admin", "StrongPass1")
	denied := doRequest(t, app, http.MethodGet, "/api/admin/administrators", limited)
	denied.Body.Close()
	if denied.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without create-admin flag, got %d", denied.StatusCode)
	}
}
