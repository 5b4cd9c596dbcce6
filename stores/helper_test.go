package stores

import (
	"context"
	"testing"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/apitest"
	"github.com/Nineteenwishes/uks-client/models"
)

// newTestEnv menjalankan backend tiruan dan client yang menunjuk ke sana.
func newTestEnv(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, &api.MemoryTokenSource{})
	return srv, client
}

// loginAs membuat akun dengan role tertentu dan login lewat AuthStore,
// sehingga client membawa token untuk request berikutnya.
func loginAs(t *testing.T, srv *apitest.Server, client *api.Client, role models.Role) *AuthStore {
	t.Helper()
	username := "akun-" + string(role)
	srv.SeedUser("Petugas "+string(role), username, "rahasia-uks", role)
	auth := NewAuthStore(client)
	if _, err := auth.Login(context.Background(), LoginInput{Username: username, Password: "rahasia-uks"}); err != nil {
		t.Fatalf("loginAs(%s): %v", role, err)
	}
	return auth
}
