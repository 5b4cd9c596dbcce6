package stores

import (
	"context"
	"strings"
	"testing"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/models"
)

func intPtr(n int) *int { return &n }

func TestObatStokRoundTrip(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	store := NewObatStore(client)
	ctx := context.Background()

	created, err := store.Create(ctx, ObatInput{Nama: "Paracetamol", Jenis: "Tablet", Stok: intPtr(10), Dosis: "500 mg"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := store.Update(ctx, created.ID, ObatInput{Nama: "Paracetamol", Jenis: "Tablet", Stok: intPtr(3), Dosis: "500 mg"}, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Stok != 3 {
		t.Errorf("stok: got %d, want 3", got.Stok)
	}
}

func TestObatCreateWithFoto(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	store := NewObatStore(client)

	foto := &api.Upload{Filename: "betadine.png", Content: strings.NewReader("png-bytes")}
	created, err := store.Create(context.Background(), ObatInput{Nama: "Betadine", Jenis: "Cair", Stok: intPtr(4)}, foto)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Foto == "" || !strings.HasPrefix(created.Foto, "medicines/") {
		t.Errorf("expected stored foto path, got %q", created.Foto)
	}
	if !strings.HasSuffix(created.Foto, ".png") {
		t.Errorf("expected original extension kept, got %q", created.Foto)
	}
}

func TestObatUpdateWithFotoUsesMethodOverride(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	seeded := srv.SeedObat(models.Obat{Nama: "Oralit", Jenis: "Serbuk", Stok: 7})

	store := NewObatStore(client)
	foto := &api.Upload{Filename: "oralit.jpg", Content: strings.NewReader("jpg-bytes")}
	updated, err := store.Update(context.Background(), seeded.ID, ObatInput{Nama: "Oralit", Jenis: "Serbuk", Stok: intPtr(6)}, foto)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Stok != 6 {
		t.Errorf("stok: got %d, want 6", updated.Stok)
	}
	if updated.Foto == "" {
		t.Error("expected foto path after multipart update")
	}
}

func TestObatCreateValidation(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	store := NewObatStore(client)

	_, err := store.Create(context.Background(), ObatInput{Jenis: "Tablet"}, nil)
	f := AsFailure(err)
	if f == nil || f.Kind != KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(f.Fields["nama"]) == 0 || len(f.Fields["stok"]) == 0 {
		t.Errorf("expected field errors for nama and stok, got %v", f.Fields)
	}

	// Stok 0 itu valid: band "habis", bukan kolom kosong.
	if _, err := store.Create(context.Background(), ObatInput{Nama: "Kasa Steril", Stok: intPtr(0)}, nil); err != nil {
		t.Errorf("stok 0 should be accepted: %v", err)
	}
}
