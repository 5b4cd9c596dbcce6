package stores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// CacheMode menentukan kapan FetchAll riwayat boleh memakai koleksi lokal.
type CacheMode int

const (
	// CacheSession: sekali terisi, koleksi tidak di-refetch sampai
	// Invalidate dipanggil. Perilaku bawaan aplikasi; tab lain yang
	// menambah riwayat tidak akan terlihat sampai invalidasi manual.
	CacheSession CacheMode = iota
	// CacheTTL: koleksi dianggap segar selama TTL sejak fetch terakhir.
	CacheTTL
	// CacheNone: setiap FetchAll selalu mengambil ulang dari server.
	CacheNone
)

// RiwayatStore memelihara arsip kunjungan yang sudah selesai. Koleksinya
// append/read-mostly, jadi store memakai kebijakan cache eksplisit alih-alih
// refetch setiap mount halaman.
type RiwayatStore struct {
	c *api.Client

	mu        sync.Mutex
	items     []models.Riwayat
	fetchedAt time.Time
	mode      CacheMode
	ttl       time.Duration
	loading   bool
	lastErr   *Failure
}

func NewRiwayatStore(c *api.Client) *RiwayatStore {
	return &RiwayatStore{c: c, mode: CacheSession}
}

// SetCachePolicy mengganti kebijakan cache. TTL hanya dipakai pada CacheTTL.
func (r *RiwayatStore) SetCachePolicy(mode CacheMode, ttl time.Duration) {
	r.mu.Lock()
	r.mode = mode
	r.ttl = ttl
	r.mu.Unlock()
}

// Invalidate membuang koleksi lokal sehingga FetchAll berikutnya mengambil
// ulang dari server.
func (r *RiwayatStore) Invalidate() {
	r.mu.Lock()
	r.items = nil
	r.fetchedAt = time.Time{}
	r.mu.Unlock()
}

func (r *RiwayatStore) fresh() bool {
	if len(r.items) == 0 {
		return false
	}
	switch r.mode {
	case CacheSession:
		return true
	case CacheTTL:
		return time.Since(r.fetchedAt) < r.ttl
	default:
		return false
	}
}

// FetchAll mengisi koleksi dari server, kecuali kebijakan cache menganggap
// koleksi lokal masih segar (no-op).
func (r *RiwayatStore) FetchAll(ctx context.Context) error {
	r.mu.Lock()
	if r.fresh() {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	r.setLoading(true)
	defer r.setLoading(false)

	var list []models.Riwayat
	if err := r.c.GetJSON(ctx, "/riwayat-kunjungan-uks", &list); err != nil {
		return r.fail(err)
	}
	r.mu.Lock()
	r.items = list
	r.fetchedAt = time.Now()
	r.lastErr = nil
	r.mu.Unlock()
	return nil
}

func (r *RiwayatStore) GetByID(ctx context.Context, id int) (models.Riwayat, error) {
	var out models.Riwayat
	if err := r.c.GetJSON(ctx, fmt.Sprintf("/riwayat-kunjungan-uks/%d", id), &out); err != nil {
		return models.Riwayat{}, r.fail(err)
	}
	return out, nil
}

// Archive menyalin kunjungan yang sudah keluar uks ke arsip riwayat lewat
// /riwayat-kunjungan-uks/store. Langkah ini terpisah dari CheckOut dan tidak
// pernah dipanggil otomatis; pemanggil yang menentukan urutannya.
func (r *RiwayatStore) Archive(ctx context.Context, k models.Kunjungan) (models.Riwayat, error) {
	if !k.SudahKeluar() {
		return models.Riwayat{}, &Failure{
			Kind:    KindValidation,
			Message: "Kunjungan belum keluar UKS, tidak bisa diarsipkan",
		}
	}
	payload := map[string]any{
		"id_kunjungan": k.ID,
		"nis":          k.NIS,
		"nama":         k.Nama,
		"kelas":        k.Kelas,
		"gejala":       k.Gejala,
		"keterangan":   k.Keterangan,
		"obat":         k.Obat,
		"foto":         k.Foto,
		"jam_masuk":    k.JamMasuk,
		"jam_keluar":   k.JamKeluar,
		"tanggal":      k.Tanggal,
	}
	var created models.Riwayat
	if err := r.c.PostJSON(ctx, "/riwayat-kunjungan-uks/store", payload, &created); err != nil {
		return models.Riwayat{}, r.fail(err)
	}
	r.mu.Lock()
	if len(r.items) > 0 {
		// Koleksi yang sedang di-cache ikut diperbarui supaya tidak
		// menunggu invalidasi.
		r.items = append(r.items, created)
	}
	r.mu.Unlock()
	return created, nil
}

// Delete menghapus satu arsip; lokal dibuang setelah server mengonfirmasi.
func (r *RiwayatStore) Delete(ctx context.Context, id int) error {
	if err := r.c.Delete(ctx, fmt.Sprintf("/riwayat-kunjungan-uks/%d", id), nil); err != nil {
		return r.fail(err)
	}
	r.mu.Lock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

func (r *RiwayatStore) Items() []models.Riwayat {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Riwayat, len(r.items))
	copy(out, r.items)
	return out
}

func (r *RiwayatStore) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *RiwayatStore) LastError() *Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *RiwayatStore) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}

func (r *RiwayatStore) fail(err error) *Failure {
	f := failureFrom(err)
	r.mu.Lock()
	r.lastErr = f
	r.mu.Unlock()
	return f
}
