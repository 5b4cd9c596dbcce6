package models

// Riwayat adalah salinan arsip dari kunjungan yang sudah selesai
// (endpoint /riwayat-kunjungan-uks). Punya id sendiri, terpisah dari
// id kunjungan asalnya.
type Riwayat struct {
	ID          int    `json:"id"`
	IDKunjungan int    `json:"id_kunjungan,omitempty"`
	NIS         string `json:"nis"`
	Nama        string `json:"nama"`
	Kelas       string `json:"kelas"`
	Gejala      string `json:"gejala"`
	Keterangan  string `json:"keterangan"`
	Obat        int    `json:"obat"`
	Foto        string `json:"foto,omitempty"`
	JamMasuk    string `json:"jam_masuk"`
	JamKeluar   string `json:"jam_keluar"`
	Tanggal     string `json:"tanggal"`
}
