package apitest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nineteenwishes/uks-client/models"
)

// Endpoint jadwal-piket mengembalikan payload telanjang.

func (s *Server) listJadwal(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.JadwalPiket, len(s.jadwal))
	copy(list, s.jadwal)
	s.mu.Unlock()
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getJadwal(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.jadwal {
		if item.ID == id {
			return c.JSON(http.StatusOK, item)
		}
	}
	return notFound(c, "Jadwal piket tidak ditemukan")
}

type jadwalRequest struct {
	NIS   string `json:"nis"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
	Hari  string `json:"hari"`
}

func (r jadwalRequest) validasi() map[string][]string {
	fields := map[string][]string{}
	if r.NIS == "" {
		fields["nis"] = append(fields["nis"], "Kolom nis wajib diisi")
	}
	if r.Nama == "" {
		fields["nama"] = append(fields["nama"], "Kolom nama wajib diisi")
	}
	if !models.ValidHari(r.Hari) {
		fields["hari"] = append(fields["hari"], "Hari piket tidak dikenal")
	}
	return fields
}

func (s *Server) createJadwal(c echo.Context) error {
	var req jadwalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}
	if fields := req.validasi(); len(fields) > 0 {
		return validationError(c, fields)
	}

	s.mu.Lock()
	created := models.JadwalPiket{ID: s.allocID(), NIS: req.NIS, Nama: req.Nama, Kelas: req.Kelas, Hari: req.Hari}
	s.jadwal = append(s.jadwal, created)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateJadwal(c echo.Context) error {
	var req jadwalRequest
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
	for i := range s.jadwal {
		if s.jadwal[i].ID == id {
			s.jadwal[i].NIS = req.NIS
			s.jadwal[i].Nama = req.Nama
			s.jadwal[i].Kelas = req.Kelas
			s.jadwal[i].Hari = req.Hari
			return c.JSON(http.StatusOK, s.jadwal[i])
		}
	}
	return notFound(c, "Jadwal piket tidak ditemukan")
}

func (s *Server) deleteJadwal(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jadwal {
		if s.jadwal[i].ID == id {
			s.jadwal = append(s.jadwal[:i], s.jadwal[i+1:]...)
			return c.JSON(http.StatusOK, map[string]interface{}{
				"message": "Jadwal piket berhasil dihapus",
			})
		}
	}
	return notFound(c, "Jadwal piket tidak ditemukan")
}
