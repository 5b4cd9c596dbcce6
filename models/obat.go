package models

import "strings"

// Obat merepresentasikan record obat dari endpoint /medicines.
type Obat struct {
	ID        int    `json:"id"`
	Nama      string `json:"nama"`
	Jenis     string `json:"jenis"`
	Stok      int    `json:"stok"`
	Dosis     string `json:"dosis"`
	Deskripsi string `json:"deskripsi"`
	Foto      string `json:"foto,omitempty"`
}

// Klasifikasi stok untuk tampilan; bukan field yang disimpan backend.
const (
	StokHabis    = "habis"
	StokMenipis  = "menipis"
	StokTersedia = "tersedia"
)

// StatusStok mengembalikan label ketersediaan: habis (0), menipis (1-5),
// tersedia (>5).
func (o Obat) StatusStok() string {
	switch {
	case o.Stok <= 0:
		return StokHabis
	case o.Stok <= 5:
		return StokMenipis
	default:
		return StokTersedia
	}
}

// FotoURL menggabungkan base URL storage dengan path relatif foto.
// Mengembalikan string kosong jika obat tidak punya foto.
func FotoURL(base, foto string) string {
	if foto == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(foto, "/")
}
