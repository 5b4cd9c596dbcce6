package apitest

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Nineteenwishes/uks-client/models"
)

// Endpoint medicines membungkus payload dalam amplop {status, message, data}.
// Create/update menerima JSON atau multipart form-data; pada multipart, file
// foto disimpan sebagai path relatif bergaya storage backend.

func (s *Server) listObat(c echo.Context) error {
	s.mu.Lock()
	list := make([]models.Obat, len(s.obat))
	copy(list, s.obat)
	s.mu.Unlock()
	return dataEnvelope(c, http.StatusOK, "Daftar obat berhasil diambil", list)
}

func (s *Server) getObat(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.obat {
		if item.ID == id {
			return dataEnvelope(c, http.StatusOK, "Obat ditemukan", item)
		}
	}
	return notFound(c, "Obat tidak ditemukan")
}

type obatRequest struct {
	Nama      string `json:"nama"`
	Jenis     string `json:"jenis"`
	Stok      string `json:"-"`
	StokJSON  *int   `json:"stok"`
	Dosis     string `json:"dosis"`
	Deskripsi string `json:"deskripsi"`
	Foto      string `json:"-"`
}

// bindObat membaca request JSON maupun multipart menjadi satu bentuk.
func (s *Server) bindObat(c echo.Context) (obatRequest, map[string][]string) {
	var req obatRequest
	fields := map[string][]string{}

	ct := c.Request().Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/") {
		req.Nama = c.FormValue("nama")
		req.Jenis = c.FormValue("jenis")
		req.Stok = c.FormValue("stok")
		req.Dosis = c.FormValue("dosis")
		req.Deskripsi = c.FormValue("deskripsi")
		if file, err := c.FormFile("foto"); err == nil {
			ext := filepath.Ext(file.Filename)
			req.Foto = "medicines/" + uuid.NewString() + ext
		}
	} else {
		if err := c.Bind(&req); err != nil {
			fields["_"] = append(fields["_"], "Invalid request payload")
			return req, fields
		}
		if req.StokJSON != nil {
			req.Stok = strconv.Itoa(*req.StokJSON)
		}
	}

	if req.Nama == "" {
		fields["nama"] = append(fields["nama"], "Kolom nama wajib diisi")
	}
	if req.Stok == "" {
		fields["stok"] = append(fields["stok"], "Kolom stok wajib diisi")
	} else if n, err := strconv.Atoi(req.Stok); err != nil || n < 0 {
		fields["stok"] = append(fields["stok"], "Kolom stok harus bilangan bulat >= 0")
	}
	return req, fields
}

func (s *Server) createObat(c echo.Context) error {
	req, fields := s.bindObat(c)
	if len(fields) > 0 {
		return validationError(c, fields)
	}
	stok, _ := strconv.Atoi(req.Stok)

	s.mu.Lock()
	created := models.Obat{
		ID:        s.allocID(),
		Nama:      req.Nama,
		Jenis:     req.Jenis,
		Stok:      stok,
		Dosis:     req.Dosis,
		Deskripsi: req.Deskripsi,
		Foto:      req.Foto,
	}
	s.obat = append(s.obat, created)
	s.mu.Unlock()

	return dataEnvelope(c, http.StatusCreated, "Obat berhasil ditambahkan", created)
}

// updateObatMultipart menangani POST /medicines/:id dengan override
// _method=PUT, pola yang dipakai backend untuk update bermultipart.
func (s *Server) updateObatMultipart(c echo.Context) error {
	if c.FormValue("_method") != "PUT" {
		return c.JSON(http.StatusMethodNotAllowed, map[string]interface{}{
			"message": "Method not allowed",
		})
	}
	return s.updateObat(c)
}

func (s *Server) updateObat(c echo.Context) error {
	req, fields := s.bindObat(c)
	if len(fields) > 0 {
		return validationError(c, fields)
	}
	stok, _ := strconv.Atoi(req.Stok)

	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.obat {
		if s.obat[i].ID == id {
			s.obat[i].Nama = req.Nama
			s.obat[i].Jenis = req.Jenis
			s.obat[i].Stok = stok
			s.obat[i].Dosis = req.Dosis
			s.obat[i].Deskripsi = req.Deskripsi
			if req.Foto != "" {
				s.obat[i].Foto = req.Foto
			}
			return dataEnvelope(c, http.StatusOK, "Obat berhasil diperbarui", s.obat[i])
		}
	}
	return notFound(c, "Obat tidak ditemukan")
}

func (s *Server) deleteObat(c echo.Context) error {
	id := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.obat {
		if s.obat[i].ID == id {
			s.obat = append(s.obat[:i], s.obat[i+1:]...)
			return dataEnvelope(c, http.StatusOK, "Obat berhasil dihapus", nil)
		}
	}
	return notFound(c, "Obat tidak ditemukan")
}
