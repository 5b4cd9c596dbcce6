package models

// Status kunjungan UKS. Transisi hanya satu arah: masuk uks -> keluar uks.
const (
	StatusMasukUKS  = "masuk uks"
	StatusKeluarUKS = "keluar uks"
)

// Kunjungan merepresentasikan kunjungan siswa ke UKS (endpoint /kunjungan-uks).
// Obat berisi id obat yang diberikan (0 jika tidak ada); relasi diselesaikan
// lewat lookup ke koleksi obat, bukan join.
type Kunjungan struct {
	ID         int    `json:"id"`
	NIS        string `json:"nis"`
	Nama       string `json:"nama"`
	Kelas      string `json:"kelas"`
	Gejala     string `json:"gejala"`
	Keterangan string `json:"keterangan"`
	Obat       int    `json:"obat"`
	Foto       string `json:"foto,omitempty"`
	Status     string `json:"status"`
	JamMasuk   string `json:"jam_masuk"`
	JamKeluar  string `json:"jam_keluar,omitempty"`
	Tanggal    string `json:"tanggal"`
}

// SudahKeluar melaporkan apakah kunjungan sudah berstatus keluar uks.
func (k Kunjungan) SudahKeluar() bool {
	return k.Status == StatusKeluarUKS
}
