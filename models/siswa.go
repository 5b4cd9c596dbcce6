package models

// Siswa merepresentasikan record siswa dari endpoint /students.
// NIS adalah natural key yang unik per siswa.
type Siswa struct {
	ID    int    `json:"id"`
	NIS   string `json:"nis"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
}
