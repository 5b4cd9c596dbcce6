// Package apitest menyediakan tiruan in-memory dari REST API UKS untuk
// kebutuhan testing. Perilakunya sengaja meniru backend sungguhan, termasuk
// bentuk response yang tidak seragam: sebagian endpoint membungkus payload
// dalam {"data": ...}, sebagian mengembalikannya telanjang.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nineteenwishes/uks-client/models"
	"github.com/Nineteenwishes/uks-client/pkg/utils"
)

type userRecord struct {
	models.User
	passwordHash string
}

// Server adalah satu instance backend tiruan di atas httptest.
type Server struct {
	URL string

	hs *httptest.Server
	e  *echo.Echo

	mu        sync.Mutex
	users     []userRecord
	siswa     []models.Siswa
	obat      []models.Obat
	kunjungan []models.Kunjungan
	riwayat   []models.Riwayat
	jadwal    []models.JadwalPiket
	nextID    int

	forcedStatus  int
	forcedMessage string
}

// NewServer menjalankan backend tiruan. Pemanggil wajib memanggil Close.
func NewServer() *Server {
	if os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "apitest-secret")
	}
	s := &Server{nextID: 1}
	e := echo.New()
	e.HideBanner = true
	s.e = e
	s.routes()
	s.hs = httptest.NewServer(e)
	s.URL = s.hs.URL
	return s
}

func (s *Server) Close() {
	s.hs.Close()
}

// FailNext memaksa satu request berikutnya gagal dengan status dan pesan
// tertentu; dipakai untuk menguji jalur error tanpa mematikan server.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	s.forcedStatus = status
	s.forcedMessage = message
	s.mu.Unlock()
}

func (s *Server) routes() {
	e := s.e
	e.Use(s.failureInjector)

	e.POST("/login", s.login)
	e.POST("/register", s.register)

	auth := e.Group("", s.authRequired)
	auth.POST("/logout", s.logout)
	auth.GET("/user", s.currentUser)
	auth.GET("/users", s.listUsers, s.requireRole(models.RoleAdmin))
	auth.GET("/users/:id", s.getUser, s.requireRole(models.RoleAdmin))

	auth.GET("/students", s.listSiswa)
	auth.POST("/students", s.createSiswa)
	auth.GET("/students/nis/:nis", s.getSiswaByNIS)
	auth.GET("/students/:id", s.getSiswa)
	auth.PUT("/students/:id", s.updateSiswa)
	auth.DELETE("/students/:id", s.deleteSiswa)

	auth.GET("/medicines", s.listObat)
	auth.POST("/medicines", s.createObat)
	auth.GET("/medicines/:id", s.getObat)
	auth.POST("/medicines/:id", s.updateObatMultipart)
	auth.PUT("/medicines/:id", s.updateObat)
	auth.DELETE("/medicines/:id", s.deleteObat)

	auth.GET("/kunjungan-uks", s.listKunjungan)
	auth.POST("/kunjungan-uks", s.createKunjungan)
	auth.GET("/kunjungan-uks/:id", s.getKunjungan)
	auth.PUT("/kunjungan-uks/:id", s.updateKunjungan)
	auth.DELETE("/kunjungan-uks/:id", s.deleteKunjungan)
	auth.POST("/kunjungan-uks/:id/keluar", s.checkOutKunjungan)

	auth.GET("/riwayat-kunjungan-uks", s.listRiwayat)
	auth.GET("/riwayat-kunjungan-uks/export", s.exportRiwayat)
	auth.POST("/riwayat-kunjungan-uks/store", s.storeRiwayat)
	auth.GET("/riwayat-kunjungan-uks/:id", s.getRiwayat)
	auth.DELETE("/riwayat-kunjungan-uks/:id", s.deleteRiwayat)

	auth.GET("/jadwal-piket", s.listJadwal)
	auth.POST("/jadwal-piket", s.createJadwal)
	auth.GET("/jadwal-piket/:id", s.getJadwal)
	auth.PUT("/jadwal-piket/:id", s.updateJadwal)
	auth.DELETE("/jadwal-piket/:id", s.deleteJadwal)
}

func (s *Server) failureInjector(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		status, msg := s.forcedStatus, s.forcedMessage
		s.forcedStatus, s.forcedMessage = 0, ""
		s.mu.Unlock()
		if status != 0 {
			return c.JSON(status, map[string]interface{}{
				"status":  status,
				"message": msg,
				"data":    nil,
			})
		}
		return next(c)
	}
}

const claimsKey = "claims"

func (s *Server) authRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Authorization header missing",
				"data":    nil,
			})
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Invalid authorization header",
				"data":    nil,
			})
		}
		claims, err := utils.ValidateJWTToken(parts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Invalid token: " + err.Error(),
				"data":    nil,
			})
		}
		c.Set(claimsKey, claims)
		return next(c)
	}
}

func (s *Server) requireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*utils.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}
			for _, r := range roles {
				if claims.Role == string(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "Anda tidak memiliki hak akses",
				"data":    nil,
			})
		}
	}
}

func (s *Server) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// --- seed helpers ---

// SeedUser menambahkan akun langsung ke penyimpanan tiruan.
func (s *Server) SeedUser(name, username, password string, role models.Role) models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{ID: s.allocID(), Name: name, Username: username, Role: role}
	s.users = append(s.users, userRecord{User: u, passwordHash: string(hash)})
	return u
}

func (s *Server) SeedSiswa(in models.Siswa) models.Siswa {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.allocID()
	s.siswa = append(s.siswa, in)
	return in
}

func (s *Server) SeedObat(in models.Obat) models.Obat {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.allocID()
	s.obat = append(s.obat, in)
	return in
}

func (s *Server) SeedKunjungan(in models.Kunjungan) models.Kunjungan {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Status == "" {
		in.Status = models.StatusMasukUKS
	}
	in.ID = s.allocID()
	s.kunjungan = append(s.kunjungan, in)
	return in
}

func (s *Server) SeedRiwayat(in models.Riwayat) models.Riwayat {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.allocID()
	s.riwayat = append(s.riwayat, in)
	return in
}

func (s *Server) SeedJadwal(in models.JadwalPiket) models.JadwalPiket {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.allocID()
	s.jadwal = append(s.jadwal, in)
	return in
}

// --- response helpers, meniru amplop backend ---

func dataEnvelope(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func validationError(c echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
		"message": "Data tidak valid",
		"errors":  fields,
	})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]interface{}{
		"status":  http.StatusNotFound,
		"message": message,
		"data":    nil,
	})
}
