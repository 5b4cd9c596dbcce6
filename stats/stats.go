// Package stats menurunkan statistik kalender dari koleksi riwayat kunjungan.
// Semua fungsi murni terhadap (koleksi, now): tanpa network, tanpa mutasi,
// deterministik. Pemanggil menghitung ulang setiap kali koleksi berubah.
package stats

import (
	"time"

	"github.com/Nineteenwishes/uks-client/models"
)

// Rekap adalah ringkasan untuk kartu "hari ini" di dashboard.
type Rekap struct {
	Total   int
	HariIni int
}

// parseTanggal membaca proyeksi YYYY-MM-DD dari field tanggal (yang bisa
// berupa tanggal polos atau timestamp penuh) di lokasi waktu now.
func parseTanggal(s string, loc *time.Location) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PerBulan menghitung kunjungan per bulan untuk tahun kalender berjalan.
// Index 0 = Januari. Record di luar tahun now tidak dihitung.
func PerBulan(records []models.Riwayat, now time.Time) [12]int {
	var buckets [12]int
	for _, rec := range records {
		t, ok := parseTanggal(rec.Tanggal, now.Location())
		if !ok || t.Year() != now.Year() {
			continue
		}
		buckets[int(t.Month())-1]++
	}
	return buckets
}

// hariIndex memetakan weekday ke index minggu mulai Senin: Senin=0 .. Minggu=6.
func hariIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// PerHariMingguIni menghitung kunjungan per hari untuk minggu ISO berjalan
// (mulai Senin), dibatasi [awal minggu 00:00:00, now 23:59:59]. Index 0 =
// Senin. Record minggu berikutnya, termasuk Minggu depan, tidak dihitung.
func PerHariMingguIni(records []models.Riwayat, now time.Time) [7]int {
	var buckets [7]int
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -hariIndex(now.Weekday()))
	end := today.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	for _, rec := range records {
		t, ok := parseTanggal(rec.Tanggal, loc)
		if !ok || t.Before(start) || t.After(end) {
			continue
		}
		buckets[hariIndex(t.Weekday())]++
	}
	return buckets
}

// RekapHariIni menghitung total seluruh record dan jumlah record yang
// tanggalnya sama dengan hari ini (dibandingkan sebagai string YYYY-MM-DD).
func RekapHariIni(records []models.Riwayat, now time.Time) Rekap {
	today := now.Format("2006-01-02")
	rekap := Rekap{Total: len(records)}
	for _, rec := range records {
		if len(rec.Tanggal) >= 10 && rec.Tanggal[:10] == today {
			rekap.HariIni++
		}
	}
	return rekap
}
