package models

// HariPiket adalah daftar hari yang valid untuk jadwal piket, urut Senin-Minggu.
var HariPiket = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

// JadwalPiket merepresentasikan satu entri jadwal piket (endpoint /jadwal-piket).
type JadwalPiket struct {
	ID    int    `json:"id"`
	NIS   string `json:"nis"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
	Hari  string `json:"hari"`
}

// ValidHari melaporkan apakah h termasuk hari piket yang dikenal.
func ValidHari(h string) bool {
	for _, d := range HariPiket {
		if d == h {
			return true
		}
	}
	return false
}
