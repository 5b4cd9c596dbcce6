package apitest

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Nineteenwishes/uks-client/models"
)

// Endpoint riwayat mengembalikan daftar telanjang; store membungkus hasil
// dalam amplop data. Ketidakseragaman ini meniru backend sungguhan.

func (s *Server) listRiwayat(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.Riwayat, len(s.riwayat))
	copy(list, s.riwayat)
	s.mu.Unlock()
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getRiwayat(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.riwayat {
		if item.ID == id {
			return c.JSON(http.StatusOK, item)
		}
	}
	return notFound(c, "Riwayat tidak ditemukan")
}

func (s *Server) storeRiwayat(c echo.Context) error {
	var req models.Riwayat
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}
	if req.IDKunjungan == 0 {
		return validationError(c, map[string][]string{
			"id_kunjungan": {"Kolom id_kunjungan wajib diisi"},
		})
	}

	s.mu.Lock()
	req.ID = s.allocID()
	s.riwayat = append(s.riwayat, req)
	s.mu.Unlock()

	return dataEnvelope(c, http.StatusCreated, "Riwayat berhasil disimpan", req)
}

func (s *Server) deleteRiwayat(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.riwayat {
		if s.riwayat[i].ID == id {
			s.riwayat = append(s.riwayat[:i], s.riwayat[i+1:]...)
			return c.JSON(http.StatusOK, map[string]interface{}{
				"message": "Riwayat berhasil dihapus",
			})
		}
	}
	return notFound(c, "Riwayat tidak ditemukan")
}

// exportRiwayat membangun laporan CSV untuk query year atau
// start_date/end_date (YYYY-MM-DD, inklusif).
func (s *Server) exportRiwayat(c echo.Context) error {
	year := c.QueryParam("year")
	start := c.QueryParam("start_date")
	end := c.QueryParam("end_date")
	if year == "" && (start == "" || end == "") {
		return validationError(c, map[string][]string{
			"year": {"Isi year atau start_date dan end_date"},
		})
	}

	s.mu.Lock()
	var rows []models.Riwayat
	for _, item := range s.riwayat {
		tanggal := item.Tanggal
		if len(tanggal) > 10 {
			tanggal = tanggal[:10]
		}
		switch {
		case year != "":
			if strings.HasPrefix(tanggal, year+"-") {
				rows = append(rows, item)
			}
		default:
			if tanggal >= start && tanggal <= end {
				rows = append(rows, item)
			}
		}
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "nis", "nama", "kelas", "gejala", "keterangan", "jam_masuk", "jam_keluar", "tanggal"})
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.Itoa(r.ID), r.NIS, r.Nama, r.Kelas, r.Gejala,
			r.Keterangan, r.JamMasuk, r.JamKeluar, r.Tanggal,
		})
	}
	w.Flush()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="laporan-riwayat-kunjungan-uks.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
