package apitest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Nineteenwishes/uks-client/models"
)

func paramID(c echo.Context) int {
	id, _ := strconv.Atoi(c.Param("id"))
	return id
}

// Endpoint students mengembalikan payload telanjang, tanpa amplop data.

func (s *Server) listSiswa(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.Siswa, len(s.siswa))
	copy(list, s.siswa)
	s.mu.Unlock()
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getSiswa(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.siswa {
		if item.ID == id {
			return c.JSON(http.StatusOK, item)
		}
	}
	return notFound(c, "Siswa tidak ditemukan")
}

func (s *Server) getSiswaByNIS(c echo.Context) error {
	nis := c.Param("nis")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.siswa {
		if item.NIS == nis {
			return c.JSON(http.StatusOK, item)
		}
	}
	return notFound(c, "Siswa tidak ditemukan")
}

type siswaRequest struct {
	NIS   string `json:"nis"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
}

func (r siswaRequest) validasi() map[string][]string {
	fields := map[string][]string{}
	if r.NIS == "" {
		fields["nis"] = append(fields["nis"], "Kolom nis wajib diisi")
	}
	if r.Nama == "" {
		fields["nama"] = append(fields["nama"], "Kolom nama wajib diisi")
	}
	if r.Kelas == "" {
		fields["kelas"] = append(fields["kelas"], "Kolom kelas wajib diisi")
	}
	return fields
}

func (s *Server) createSiswa(c echo.Context) error {
	var req siswaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}
	if fields := req.validasi(); len(fields) > 0 {
		return validationError(c, fields)
	}

	s.mu.Lock()
	for _, item := range s.siswa {
		if item.NIS == req.NIS {
			s.mu.Unlock()
			return validationError(c, map[string][]string{
				"nis": {"NIS sudah terdaftar"},
			})
		}
	}
	created := models.Siswa{ID: s.allocID(), NIS: req.NIS, Nama: req.Nama, Kelas: req.Kelas}
	s.siswa = append(s.siswa, created)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateSiswa(c echo.Context) error {
	var req siswaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}
	if fields := req.validasi(); len(fields) > 0 {
		return validationError(c, fields)
	}

	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.siswa {
		if s.siswa[i].ID == id {
			s.siswa[i].NIS = req.NIS
			s.siswa[i].Nama = req.Nama
			s.siswa[i].Kelas = req.Kelas
			return c.JSON(http.StatusOK, s.siswa[i])
		}
	}
	return notFound(c, "Siswa tidak ditemukan")
}

func (s *Server) deleteSiswa(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.siswa {
		if s.siswa[i].ID == id {
			s.siswa = append(s.siswa[:i], s.siswa[i+1:]...)
			return c.JSON(http.StatusOK, map[string]interface{}{
				"message": "Siswa berhasil dihapus",
			})
		}
	}
	return notFound(c, "Siswa tidak ditemukan")
}
