package gate

import (
	"testing"

	"github.com/Nineteenwishes/uks-client/models"
)

func TestCheckWaitsWhileSessionLoading(t *testing.T) {
	d := Check(nil, true, models.RoleAdmin)
	if d.Action != Wait {
		t.Errorf("loading session: got %v, want Wait", d.Action)
	}
}

func TestCheckRedirectsUnauthenticatedToLogin(t *testing.T) {
	d := Check(nil, false, models.RoleAdmin)
	if d.Action != Redirect || d.Target != LoginRoute {
		t.Errorf("got %+v, want redirect to %q", d, LoginRoute)
	}
}

func TestCheckStaffOnAdminPageRedirectsToStaffDashboard(t *testing.T) {
	staf := &models.User{ID: 2, Name: "Staf UKS", Username: "staf1", Role: models.RoleStaff}
	d := Check(staf, false, models.RoleAdmin)
	if d.Action != Redirect {
		t.Fatalf("staff must never render admin content, got %v", d.Action)
	}
	if d.Target != "/staff/dashboard" {
		t.Errorf("target: got %q, want /staff/dashboard", d.Target)
	}
}

func TestCheckAllowsMatchingRole(t *testing.T) {
	admin := &models.User{ID: 1, Name: "Admin", Username: "admin1", Role: models.RoleAdmin}
	if d := Check(admin, false, models.RoleAdmin); d.Action != Render {
		t.Errorf("admin on admin page: got %v, want Render", d.Action)
	}
}

func TestCheckAllowsAnyListedRole(t *testing.T) {
	user := &models.User{ID: 3, Name: "Piket", Username: "piket1", Role: models.RoleUser}
	if d := Check(user, false, models.RoleStaff, models.RoleUser); d.Action != Render {
		t.Errorf("user on shared page: got %v, want Render", d.Action)
	}
	if d := Check(user, false, models.RoleAdmin, models.RoleStaff); d.Action != Redirect || d.Target != "/user/dashboard" {
		t.Errorf("user on staff page: got %+v", Check(user, false, models.RoleAdmin, models.RoleStaff))
	}
}
