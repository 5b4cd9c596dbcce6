package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// AuthStore memegang sesi aktif: paling banyak satu user per client.
// Lifecycle eksplisit: Login/Restore mengisi sesi, Logout membongkar memori
// sekaligus token yang dipersist. Tidak ada singleton ambient; store ini
// dipegang oleh app context.
type AuthStore struct {
	c *api.Client

	mu      sync.Mutex
	user    *models.User
	loading bool
	lastErr *Failure
}

func NewAuthStore(c *api.Client) *AuthStore {
	return &AuthStore{c: c}
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// LoginInput adalah kredensial yang dikirim ke /login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput adalah field pendaftaran akun baru.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role" validate:"required,oneof=admin staff user"`
}

// Login mengautentikasi ke backend, menyimpan token ke TokenSource, dan
// mengisi sesi dengan user hasil server.
func (a *AuthStore) Login(ctx context.Context, in LoginInput) (models.User, error) {
	if f := validateInput(in); f != nil {
		return models.User{}, f
	}
	a.setLoading(true)
	defer a.setLoading(false)

	var resp loginResponse
	if err := a.c.PostJSON(ctx, "/login", in, &resp); err != nil {
		return models.User{}, a.fail(err)
	}
	if err := a.c.Tokens.Save(resp.Token); err != nil {
		return models.User{}, a.fail(err)
	}
	a.mu.Lock()
	u := resp.User
	a.user = &u
	a.lastErr = nil
	a.mu.Unlock()
	return resp.User, nil
}

// Restore memulihkan sesi dari token yang dipersist dengan memanggil /user.
// Kalau pengecekan gagal karena token tidak valid, token ikut dibersihkan.
func (a *AuthStore) Restore(ctx context.Context) (models.User, error) {
	if a.c.Tokens.Token() == "" {
		return models.User{}, &Failure{Kind: KindUnauthorized, Message: "Tidak ada sesi tersimpan"}
	}
	a.setLoading(true)
	defer a.setLoading(false)

	var u models.User
	if err := a.c.GetJSON(ctx, "/user", &u); err != nil {
		f := a.fail(err)
		if f.Kind == KindUnauthorized {
			_ = a.c.Tokens.Clear()
			a.mu.Lock()
			a.user = nil
			a.mu.Unlock()
		}
		return models.User{}, f
	}
	a.mu.Lock()
	a.user = &u
	a.lastErr = nil
	a.mu.Unlock()
	return u, nil
}

// Logout memberi tahu backend lalu membongkar sesi. Memori dan token
// dipersist selalu dibersihkan, juga saat panggilan server gagal.
func (a *AuthStore) Logout(ctx context.Context) error {
	err := a.c.PostJSON(ctx, "/logout", nil, nil)
	_ = a.c.Tokens.Clear()
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
	if err != nil {
		return a.fail(err)
	}
	return nil
}

// Register mendaftarkan akun baru. Sesi tidak berubah; user baru tetap harus
// login sendiri.
func (a *AuthStore) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if f := validateInput(in); f != nil {
		return models.User{}, f
	}
	var created models.User
	if err := a.c.PostJSON(ctx, "/register", in, &created); err != nil {
		return models.User{}, a.fail(err)
	}
	return created, nil
}

// Users mengambil daftar seluruh akun (halaman admin).
func (a *AuthStore) Users(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := a.c.GetJSON(ctx, "/users", &list); err != nil {
		return nil, a.fail(err)
	}
	return list, nil
}

// GetUser mengambil satu akun berdasarkan id.
func (a *AuthStore) GetUser(ctx context.Context, id int) (models.User, error) {
	var u models.User
	if err := a.c.GetJSON(ctx, fmt.Sprintf("/users/%d", id), &u); err != nil {
		return models.User{}, a.fail(err)
	}
	return u, nil
}

// CurrentUser mengembalikan salinan user sesi aktif, atau nil.
func (a *AuthStore) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// Authenticated melaporkan apakah ada sesi aktif.
func (a *AuthStore) Authenticated() bool {
	return a.CurrentUser() != nil
}

func (a *AuthStore) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *AuthStore) LastError() *Failure {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

func (a *AuthStore) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}

func (a *AuthStore) fail(err error) *Failure {
	f := failureFrom(err)
	a.mu.Lock()
	a.lastErr = f
	a.mu.Unlock()
	return f
}
