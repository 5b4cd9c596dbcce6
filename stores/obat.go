package stores

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

// ObatStore memelihara cermin lokal dari koleksi obat di backend.
// Create/update berbentuk multipart saat ada file foto; tanpa foto dikirim
// sebagai JSON biasa. Update dengan foto memakai override _method=PUT.
type ObatStore struct {
	c *api.Client

	mu      sync.Mutex
	items   []models.Obat
	loading bool
	lastErr *Failure
}

func NewObatStore(c *api.Client) *ObatStore {
	return &ObatStore{c: c}
}

// ObatInput adalah field yang dikirim saat create/update obat. Stok pointer
// supaya nilai 0 tetap terbaca sebagai "diisi".
type ObatInput struct {
	Nama      string `json:"nama" validate:"required"`
	Jenis     string `json:"jenis"`
	Stok      *int   `json:"stok" validate:"required,gte=0"`
	Dosis     string `json:"dosis"`
	Deskripsi string `json:"deskripsi"`
}

func (in ObatInput) formFields() map[string]string {
	fields := map[string]string{
		"nama":      in.Nama,
		"jenis":     in.Jenis,
		"dosis":     in.Dosis,
		"deskripsi": in.Deskripsi,
	}
	if in.Stok != nil {
		fields["stok"] = strconv.Itoa(*in.Stok)
	}
	return fields
}

func (o *ObatStore) FetchAll(ctx context.Context) error {
	o.setLoading(true)
	defer o.setLoading(false)

	var list []models.Obat
	if err := o.c.GetJSON(ctx, "/medicines", &list); err != nil {
		return o.fail(err)
	}
	o.mu.Lock()
	o.items = list
	o.lastErr = nil
	o.mu.Unlock()
	return nil
}

func (o *ObatStore) GetByID(ctx context.Context, id int) (models.Obat, error) {
	var out models.Obat
	if err := o.c.GetJSON(ctx, fmt.Sprintf("/medicines/%d", id), &out); err != nil {
		return models.Obat{}, o.fail(err)
	}
	return out, nil
}

// Create mengirim obat baru; foto boleh nil.
func (o *ObatStore) Create(ctx context.Context, in ObatInput, foto *api.Upload) (models.Obat, error) {
	if f := validateInput(in); f != nil {
		return models.Obat{}, f
	}
	var created models.Obat
	var err error
	if foto != nil {
		foto.Field = "foto"
		err = o.c.PostMultipart(ctx, "/medicines", in.formFields(), foto, &created)
	} else {
		err = o.c.PostJSON(ctx, "/medicines", in, &created)
	}
	if err != nil {
		return models.Obat{}, o.fail(err)
	}
	o.mu.Lock()
	o.items = append(o.items, created)
	o.mu.Unlock()
	return created, nil
}

// Update mengirim perubahan obat. Dengan foto, request berupa POST multipart
// ke /medicines/:id dengan field _method=PUT.
func (o *ObatStore) Update(ctx context.Context, id int, in ObatInput, foto *api.Upload) (models.Obat, error) {
	if f := validateInput(in); f != nil {
		return models.Obat{}, f
	}
	var updated models.Obat
	var err error
	if foto != nil {
		foto.Field = "foto"
		fields := in.formFields()
		fields["_method"] = "PUT"
		err = o.c.PostMultipart(ctx, fmt.Sprintf("/medicines/%d", id), fields, foto, &updated)
	} else {
		err = o.c.PutJSON(ctx, fmt.Sprintf("/medicines/%d", id), in, &updated)
	}
	if err != nil {
		return models.Obat{}, o.fail(err)
	}
	o.mu.Lock()
	for i := range o.items {
		if o.items[i].ID == id {
			o.items[i] = updated
			break
		}
	}
	o.mu.Unlock()
	return updated, nil
}

// Delete menghapus di server dulu, lokal menyusul setelah konfirmasi.
func (o *ObatStore) Delete(ctx context.Context, id int) error {
	if err := o.c.Delete(ctx, fmt.Sprintf("/medicines/%d", id), nil); err != nil {
		return o.fail(err)
	}
	o.mu.Lock()
	for i := range o.items {
		if o.items[i].ID == id {
			o.items = append(o.items[:i], o.items[i+1:]...)
			break
		}
	}
	o.mu.Unlock()
	return nil
}

func (o *ObatStore) Items() []models.Obat {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.Obat, len(o.items))
	copy(out, o.items)
	return out
}

func (o *ObatStore) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

func (o *ObatStore) LastError() *Failure {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

func (o *ObatStore) setLoading(v bool) {
	o.mu.Lock()
	o.loading = v
	o.mu.Unlock()
}

func (o *ObatStore) fail(err error) *Failure {
	f := failureFrom(err)
	o.mu.Lock()
	o.lastErr = f
	o.mu.Unlock()
	return f
}
