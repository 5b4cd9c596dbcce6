package stores

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// JadwalPiketStore memelihara cermin lokal jadwal piket. CRUD polos tanpa
// state machine.
type JadwalPiketStore struct {
	c *api.Client

	mu      sync.Mutex
	items   []models.JadwalPiket
	loading bool
	lastErr *Failure
}

func NewJadwalPiketStore(c *api.Client) *JadwalPiketStore {
	return &JadwalPiketStore{c: c}
}

// JadwalPiketInput adalah field yang dikirim saat create/update jadwal piket.
type JadwalPiketInput struct {
	NIS   string `json:"nis" validate:"required"`
	Nama  string `json:"nama" validate:"required"`
	Kelas string `json:"kelas"`
	Hari  string `json:"hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
}

func (j *JadwalPiketStore) FetchAll(ctx context.Context) error {
	j.setLoading(true)
	defer j.setLoading(false)

	var list []models.JadwalPiket
	if err := j.c.GetJSON(ctx, "/jadwal-piket", &list); err != nil {
		return j.fail(err)
	}
	j.mu.Lock()
	j.items = list
	j.lastErr = nil
	j.mu.Unlock()
	return nil
}

func (j *JadwalPiketStore) GetByID(ctx context.Context, id int) (models.JadwalPiket, error) {
	var out models.JadwalPiket
	if err := j.c.GetJSON(ctx, fmt.Sprintf("/jadwal-piket/%d", id), &out); err != nil {
		return models.JadwalPiket{}, j.fail(err)
	}
	return out, nil
}

func (j *JadwalPiketStore) Create(ctx context.Context, in JadwalPiketInput) (models.JadwalPiket, error) {
	if f := validateInput(in); f != nil {
		return models.JadwalPiket{}, f
	}
	var created models.JadwalPiket
	if err := j.c.PostJSON(ctx, "/jadwal-piket", in, &created); err != nil {
		return models.JadwalPiket{}, j.fail(err)
	}
	j.mu.Lock()
	j.items = append(j.items, created)
	j.mu.Unlock()
	return created, nil
}

func (j *JadwalPiketStore) Update(ctx context.Context, id int, in JadwalPiketInput) (models.JadwalPiket, error) {
	if f := validateInput(in); f != nil {
		return models.JadwalPiket{}, f
	}
	var updated models.JadwalPiket
	if err := j.c.PutJSON(ctx, fmt.Sprintf("/jadwal-piket/%d", id), in, &updated); err != nil {
		return models.JadwalPiket{}, j.fail(err)
	}
	j.mu.Lock()
	for i := range j.items {
		if j.items[i].ID == id {
			j.items[i] = updated
			break
		}
	}
	j.mu.Unlock()
	return updated, nil
}

func (j *JadwalPiketStore) Delete(ctx context.Context, id int) error {
	if err := j.c.Delete(ctx, fmt.Sprintf("/jadwal-piket/%d", id), nil); err != nil {
		return j.fail(err)
	}
	j.mu.Lock()
	for i := range j.items {
		if j.items[i].ID == id {
			j.items = append(j.items[:i], j.items[i+1:]...)
			break
		}
	}
	j.mu.Unlock()
	return nil
}

// PerHari mengelompokkan jadwal lokal per hari piket, urut Senin-Minggu.
func (j *JadwalPiketStore) PerHari() map[string][]models.JadwalPiket {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string][]models.JadwalPiket, len(models.HariPiket))
	for _, item := range j.items {
		hari := strings.TrimSpace(item.Hari)
		out[hari] = append(out[hari], item)
	}
	return out
}

func (j *JadwalPiketStore) Items() []models.JadwalPiket {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.JadwalPiket, len(j.items))
	copy(out, j.items)
	return out
}

func (j *JadwalPiketStore) Loading() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.loading
}

func (j *JadwalPiketStore) LastError() *Failure {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastErr
}

func (j *JadwalPiketStore) setLoading(v bool) {
	j.mu.Lock()
	j.loading = v
	j.mu.Unlock()
}

func (j *JadwalPiketStore) fail(err error) *Failure {
	f := failureFrom(err)
	j.mu.Lock()
	j.lastErr = f
	j.mu.Unlock()
	return f
}
