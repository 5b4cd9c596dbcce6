package stores

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// KunjunganStore memelihara cermin lokal kunjungan UKS yang sedang berjalan.
// Kunjungan lahir berstatus masuk uks dan hanya punya satu transisi, lewat
// CheckOut, menuju keluar uks.
type KunjunganStore struct {
	c *api.Client

	mu      sync.Mutex
	items   []models.Kunjungan
	loading bool
	lastErr *Failure
}

func NewKunjunganStore(c *api.Client) *KunjunganStore {
	return &KunjunganStore{c: c}
}

// KunjunganInput adalah field yang dikirim saat mencatat kunjungan.
type KunjunganInput struct {
	NIS        string `json:"nis" validate:"required"`
	Nama       string `json:"nama"`
	Kelas      string `json:"kelas"`
	Gejala     string `json:"gejala" validate:"required"`
	Keterangan string `json:"keterangan"`
	Obat       int    `json:"obat"`
}

func (in KunjunganInput) formFields() map[string]string {
	return map[string]string{
		"nis":        in.NIS,
		"nama":       in.Nama,
		"kelas":      in.Kelas,
		"gejala":     in.Gejala,
		"keterangan": in.Keterangan,
		"obat":       strconv.Itoa(in.Obat),
	}
}

func (k *KunjunganStore) FetchAll(ctx context.Context) error {
	k.setLoading(true)
	defer k.setLoading(false)

	var list []models.Kunjungan
	if err := k.c.GetJSON(ctx, "/kunjungan-uks", &list); err != nil {
		return k.fail(err)
	}
	k.mu.Lock()
	k.items = list
	k.lastErr = nil
	k.mu.Unlock()
	return nil
}

func (k *KunjunganStore) GetByID(ctx context.Context, id int) (models.Kunjungan, error) {
	var out models.Kunjungan
	if err := k.c.GetJSON(ctx, fmt.Sprintf("/kunjungan-uks/%d", id), &out); err != nil {
		return models.Kunjungan{}, k.fail(err)
	}
	return out, nil
}

// Create mencatat kunjungan baru; server yang menentukan status masuk uks,
// jam_masuk, dan tanggal. Foto boleh nil.
func (k *KunjunganStore) Create(ctx context.Context, in KunjunganInput, foto *api.Upload) (models.Kunjungan, error) {
	if f := validateInput(in); f != nil {
		return models.Kunjungan{}, f
	}
	var created models.Kunjungan
	var err error
	if foto != nil {
		foto.Field = "foto"
		err = k.c.PostMultipart(ctx, "/kunjungan-uks", in.formFields(), foto, &created)
	} else {
		err = k.c.PostJSON(ctx, "/kunjungan-uks", in, &created)
	}
	if err != nil {
		return models.Kunjungan{}, k.fail(err)
	}
	k.mu.Lock()
	k.items = append(k.items, created)
	k.mu.Unlock()
	return created, nil
}

func (k *KunjunganStore) Update(ctx context.Context, id int, in KunjunganInput) (models.Kunjungan, error) {
	if f := validateInput(in); f != nil {
		return models.Kunjungan{}, f
	}
	var updated models.Kunjungan
	if err := k.c.PutJSON(ctx, fmt.Sprintf("/kunjungan-uks/%d", id), in, &updated); err != nil {
		return models.Kunjungan{}, k.fail(err)
	}
	k.mu.Lock()
	for i := range k.items {
		if k.items[i].ID == id {
			k.items[i] = updated
			break
		}
	}
	k.mu.Unlock()
	return updated, nil
}

// CheckOut mentransisikan kunjungan ke keluar uks; server menstempel
// jam_keluar bersamaan dengan perubahan status. Transisi satu arah: untuk
// kunjungan yang sudah keluar, penolakan backend diteruskan apa adanya.
func (k *KunjunganStore) CheckOut(ctx context.Context, id int) (models.Kunjungan, error) {
	var updated models.Kunjungan
	if err := k.c.PostJSON(ctx, fmt.Sprintf("/kunjungan-uks/%d/keluar", id), nil, &updated); err != nil {
		return models.Kunjungan{}, k.fail(err)
	}
	k.mu.Lock()
	for i := range k.items {
		if k.items[i].ID == id {
			k.items[i] = updated
			break
		}
	}
	k.mu.Unlock()
	return updated, nil
}

func (k *KunjunganStore) Delete(ctx context.Context, id int) error {
	if err := k.c.Delete(ctx, fmt.Sprintf("/kunjungan-uks/%d", id), nil); err != nil {
		return k.fail(err)
	}
	k.mu.Lock()
	for i := range k.items {
		if k.items[i].ID == id {
			k.items = append(k.items[:i], k.items[i+1:]...)
			break
		}
	}
	k.mu.Unlock()
	return nil
}

func (k *KunjunganStore) Items() []models.Kunjungan {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]models.Kunjungan, len(k.items))
	copy(out, k.items)
	return out
}

func (k *KunjunganStore) Loading() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.loading
}

func (k *KunjunganStore) LastError() *Failure {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.lastErr
}

func (k *KunjunganStore) setLoading(v bool) {
	k.mu.Lock()
	k.loading = v
	k.mu.Unlock()
}

func (k *KunjunganStore) fail(err error) *Failure {
	f := failureFrom(err)
	k.mu.Lock()
	k.lastErr = f
	k.mu.Unlock()
	return f
}
