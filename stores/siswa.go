package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// SiswaStore memelihara cermin lokal dari koleksi siswa di backend.
// Koleksi hanya dimutasi oleh method store ini sendiri; pemanggilan FetchAll
// yang beririsan tidak dibatalkan, response yang selesai terakhir yang menang.
type SiswaStore struct {
	c *api.Client

	mu      sync.Mutex
	items   []models.Siswa
	loading bool
	lastErr *Failure
}

func NewSiswaStore(c *api.Client) *SiswaStore {
	return &SiswaStore{c: c}
}

// SiswaInput adalah field yang dikirim saat create/update siswa.
type SiswaInput struct {
	NIS   string `json:"nis" validate:"required"`
	Nama  string `json:"nama" validate:"required"`
	Kelas string `json:"kelas" validate:"required"`
}

// FetchAll mengganti koleksi lokal dengan isi terkini dari server.
func (s *SiswaStore) FetchAll(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var list []models.Siswa
	if err := s.c.GetJSON(ctx, "/students", &list); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.items = list
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// GetByID mengambil satu siswa tanpa menyentuh koleksi lokal.
func (s *SiswaStore) GetByID(ctx context.Context, id int) (models.Siswa, error) {
	var out models.Siswa
	if err := s.c.GetJSON(ctx, fmt.Sprintf("/students/%d", id), &out); err != nil {
		return models.Siswa{}, s.fail(err)
	}
	return out, nil
}

// GetByNIS mencari siswa berdasarkan NIS.
func (s *SiswaStore) GetByNIS(ctx context.Context, nis string) (models.Siswa, error) {
	var out models.Siswa
	if err := s.c.GetJSON(ctx, "/students/nis/"+nis, &out); err != nil {
		return models.Siswa{}, s.fail(err)
	}
	return out, nil
}

// Create memvalidasi field wajib lalu mengirim siswa baru. Record hasil
// server ditambahkan ke koleksi lokal setelah request sukses.
func (s *SiswaStore) Create(ctx context.Context, in SiswaInput) (models.Siswa, error) {
	if f := validateInput(in); f != nil {
		return models.Siswa{}, f
	}
	var created models.Siswa
	if err := s.c.PostJSON(ctx, "/students", in, &created); err != nil {
		return models.Siswa{}, s.fail(err)
	}
	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

// Update mengirim perubahan lalu mengganti record lokal dengan id yang sama.
func (s *SiswaStore) Update(ctx context.Context, id int, in SiswaInput) (models.Siswa, error) {
	if f := validateInput(in); f != nil {
		return models.Siswa{}, f
	}
	var updated models.Siswa
	if err := s.c.PutJSON(ctx, fmt.Sprintf("/students/%d", id), in, &updated); err != nil {
		return models.Siswa{}, s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete menghapus di server dulu; record lokal baru dibuang setelah server
// mengonfirmasi. Kalau server menolak, koleksi lokal tidak berubah.
func (s *SiswaStore) Delete(ctx context.Context, id int) error {
	if err := s.c.Delete(ctx, fmt.Sprintf("/students/%d", id), nil); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Items mengembalikan salinan koleksi lokal.
func (s *SiswaStore) Items() []models.Siswa {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Siswa, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SiswaStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SiswaStore) LastError() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *SiswaStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *SiswaStore) fail(err error) *Failure {
	f := failureFrom(err)
	s.mu.Lock()
	s.lastErr = f
	s.mu.Unlock()
	return f
}
