package apitest

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Nineteenwishes/uks-client/models"
)

// Endpoint kunjungan-uks membungkus payload dalam amplop {status, message,
// data}. Server yang menentukan status awal, jam_masuk, dan tanggal.

func (s *Server) listKunjungan(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.Kunjungan, len(s.kunjungan))
	copy(list, s.kunjungan)
	s.mu.Unlock()
	return dataEnvelope(c, http.StatusOK, "Daftar kunjungan berhasil diambil", list)
}

func (s *Server) getKunjungan(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.kunjungan {
		if item.ID == id {
			return dataEnvelope(c, http.StatusOK, "Kunjungan ditemukan", item)
		}
	}
	return notFound(c, "Kunjungan tidak ditemukan")
}

type kunjunganRequest struct {
	NIS        string `json:"nis"`
	Nama       string `json:"nama"`
	Kelas      string `json:"kelas"`
	Gejala     string `json:"gejala"`
	Keterangan string `json:"keterangan"`
	Obat       int    `json:"obat"`
	Foto       string `json:"-"`
}

func (s *Server) bindKunjungan(c echo.Context) (kunjunganRequest, map[string][]string) {
	var req kunjunganRequest
	fields := map[string][]string{}

	ct := c.Request().Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/") {
		req.NIS = c.FormValue("nis")
		req.Nama = c.FormValue("nama")
		req.Kelas = c.FormValue("kelas")
		req.Gejala = c.FormValue("gejala")
		req.Keterangan = c.FormValue("keterangan")
		req.Obat, _ = strconv.Atoi(c.FormValue("obat"))
		if file, err := c.FormFile("foto"); err == nil {
			ext := filepath.Ext(file.Filename)
			req.Foto = "kunjungan/" + uuid.NewString() + ext
		}
	} else if err := c.Bind(&req); err != nil {
		fields["_"] = append(fields["_"], "Invalid request payload")
		return req, fields
	}

	if req.NIS == "" {
		fields["nis"] = append(fields["nis"], "Kolom nis wajib diisi")
	}
	if req.Gejala == "" {
		fields["gejala"] = append(fields["gejala"], "Kolom gejala wajib diisi")
	}
	return req, fields
}

func (s *Server) createKunjungan(c echo.Context) error {
	req, fields := s.bindKunjungan(c)
	if len(fields) > 0 {
		return validationError(c, fields)
	}

	now := time.Now()
	s.mu.Lock()
	created := models.Kunjungan{
		ID:         s.allocID(),
		NIS:        req.NIS,
		Nama:       req.Nama,
		Kelas:      req.Kelas,
		Gejala:     req.Gejala,
		Keterangan: req.Keterangan,
		Obat:       req.Obat,
		Foto:       req.Foto,
		Status:     models.StatusMasukUKS,
		JamMasuk:   now.Format("15:04:05"),
		Tanggal:    now.Format("2006-01-02"),
	}
	s.kunjungan = append(s.kunjungan, created)
	s.mu.Unlock()

	return dataEnvelope(c, http.StatusCreated, "Kunjungan berhasil dicatat", created)
}

func (s *Server) updateKunjungan(c echo.Context) error {
	req, fields := s.bindKunjungan(c)
	if len(fields) > 0 {
		return validationError(c, fields)
	}

	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kunjungan {
		if s.kunjungan[i].ID == id {
			s.kunjungan[i].NIS = req.NIS
			s.kunjungan[i].Nama = req.Nama
			s.kunjungan[i].Kelas = req.Kelas
			s.kunjungan[i].Gejala = req.Gejala
			s.kunjungan[i].Keterangan = req.Keterangan
			s.kunjungan[i].Obat = req.Obat
			return dataEnvelope(c, http.StatusOK, "Kunjungan berhasil diperbarui", s.kunjungan[i])
		}
	}
	return notFound(c, "Kunjungan tidak ditemukan")
}

// checkOutKunjungan mentransisikan status ke keluar uks sekaligus menstempel
// jam_keluar. Kunjungan yang sudah keluar ditolak dengan 422.
func (s *Server) checkOutKunjungan(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kunjungan {
		if s.kunjungan[i].ID == id {
			if s.kunjungan[i].Status == models.StatusKeluarUKS {
				return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
					"message": "Kunjungan sudah keluar UKS",
				})
			}
			s.kunjungan[i].Status = models.StatusKeluarUKS
			s.kunjungan[i].JamKeluar = time.Now().Format("15:04:05")
			return dataEnvelope(c, http.StatusOK, "Kunjungan keluar UKS", s.kunjungan[i])
		}
	}
	return notFound(c, "Kunjungan tidak ditemukan")
}

func (s *Server) deleteKunjungan(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kunjungan {
		if s.kunjungan[i].ID == id {
			s.kunjungan = append(s.kunjungan[:i], s.kunjungan[i+1:]...)
			return dataEnvelope(c, http.StatusOK, "Kunjungan berhasil dihapus", nil)
		}
	}
	return notFound(c, "Kunjungan tidak ditemukan")
}
