package apitest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nineteenwishes/uks-client/models"
	"github.com/Nineteenwishes/uks-client/pkg/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	s.mu.Lock()
	var rec *userRecord
	for i := range s.users {
		if s.users[i].Username == req.Username {
			rec = &s.users[i]
			break
		}
	}
	s.mu.Unlock()

	if rec == nil || bcrypt.CompareHashAndPassword([]byte(rec.passwordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"message": "Username atau password salah",
		})
	}

	token, err := utils.GenerateJWTToken(rec.ID, rec.Name, rec.Username, string(rec.Role), time.Now().Add(24*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Failed to generate token",
		})
	}

	// Login mengembalikan payload telanjang, tanpa amplop data.
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login berhasil",
		"token":   token,
		"user":    rec.User,
	})
}

func (s *Server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logout berhasil",
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	fields := map[string][]string{}
	if req.Name == "" {
		fields["name"] = append(fields["name"], "Kolom name wajib diisi")
	}
	if req.Username == "" {
		fields["username"] = append(fields["username"], "Kolom username wajib diisi")
	}
	if len(req.Password) < 8 {
		fields["password"] = append(fields["password"], "Password minimal 8 karakter")
	}
	if !models.Role(req.Role).Valid() {
		fields["role"] = append(fields["role"], "Role tidak dikenal")
	}
	if len(fields) > 0 {
		return validationError(c, fields)
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].Username == req.Username {
			s.mu.Unlock()
			return validationError(c, map[string][]string{
				"username": {"Username sudah terpakai"},
			})
		}
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	u := models.User{ID: s.allocID(), Name: req.Name, Username: req.Username, Role: models.Role(req.Role)}
	s.users = append(s.users, userRecord{User: u, passwordHash: string(hash)})
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, u)
}

func (s *Server) currentUser(c echo.Context) error {
	claims := c.Get(claimsKey).(*utils.Claims)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == claims.IDUser {
			return c.JSON(http.StatusOK, s.users[i].User)
		}
	}
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"message": "Sesi tidak valid, silakan login ulang",
	})
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.User, 0, len(s.users))
	for i := range s.users {
		list = append(list, s.users[i].User)
	}
	s.mu.Unlock()
	return dataEnvelope(c, http.StatusOK, "Daftar user berhasil diambil", list)
}

func (s *Server) getUser(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return dataEnvelope(c, http.StatusOK, "User ditemukan", s.users[i].User)
		}
	}
	return notFound(c, "User tidak ditemukan")
}
