// Package gate memutuskan apakah sebuah halaman boleh dirender untuk sesi
// saat ini. Ini hanya kenyamanan UX; backend tetap otoritas yang menolak
// request tanpa hak akses.
package gate

import "github.com/Nineteenwishes/uks-client/models"

// Action adalah hasil keputusan gate.
type Action int

const (
	// Render: sesi cocok dengan role halaman, konten boleh tampil.
	Render Action = iota
	// Wait: sesi masih dipulihkan, jangan render apa pun dulu.
	Wait
	// Redirect: arahkan ke Target tanpa pernah merender konten halaman.
	Redirect
)

// Decision adalah keputusan gate beserta tujuan redirect (kalau ada).
type Decision struct {
	Action Action
	Target string
}

// LoginRoute adalah tujuan redirect untuk sesi yang belum terautentikasi.
const LoginRoute = "/"

// DashboardRoute mengembalikan route dashboard milik sebuah role.
func DashboardRoute(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleStaff:
		return "/staff/dashboard"
	default:
		return "/user/dashboard"
	}
}

// Check mengevaluasi sesi terhadap daftar role yang diizinkan halaman.
// Pemanggil wajib mengevaluasi ulang setiap kali user atau flag loading
// berubah. Urutan keputusan: masih loading -> Wait; tanpa sesi -> Redirect ke
// login; role tidak cocok -> Redirect ke dashboard role itu sendiri.
func Check(user *models.User, loading bool, allowed ...models.Role) Decision {
	if loading {
		return Decision{Action: Wait}
	}
	if user == nil {
		return Decision{Action: Redirect, Target: LoginRoute}
	}
	for _, r := range allowed {
		if user.Role == r {
			return Decision{Action: Render}
		}
	}
	return Decision{Action: Redirect, Target: DashboardRoute(user.Role)}
}
