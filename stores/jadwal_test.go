package stores

import (
	"context"
	"testing"

	"github.com/Nineteenwishes/uks-client/models"
)

func TestJadwalCreateAndGroupPerHari(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	store := NewJadwalPiketStore(client)
	ctx := context.Background()

	for _, in := range []JadwalPiketInput{
		{NIS: "2210001", Nama: "Budi", Kelas: "XI IPA 2", Hari: "Senin"},
		{NIS: "2210002", Nama: "Citra", Kelas: "X IPS 1", Hari: "Senin"},
		{NIS: "2210003", Nama: "Dewi", Kelas: "X IPS 1", Hari: "Kamis"},
	} {
		if _, err := store.Create(ctx, in); err != nil {
			t.Fatalf("Create %s: %v", in.Nama, err)
		}
	}

	perHari := store.PerHari()
	if len(perHari["Senin"]) != 2 {
		t.Errorf("Senin: got %d, want 2", len(perHari["Senin"]))
	}
	if len(perHari["Kamis"]) != 1 {
		t.Errorf("Kamis: got %d, want 1", len(perHari["Kamis"]))
	}
}

func TestJadwalRejectsUnknownHari(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	store := NewJadwalPiketStore(client)

	_, err := store.Create(context.Background(), JadwalPiketInput{NIS: "2210004", Nama: "Eka", Hari: "Lusa"})
	f := AsFailure(err)
	if f == nil || f.Kind != KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(f.Fields["hari"]) == 0 {
		t.Errorf("expected field error for hari, got %v", f.Fields)
	}
}

func TestJadwalUpdateAndDelete(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleAdmin)
	seeded := srv.SeedJadwal(models.JadwalPiket{NIS: "2210005", Nama: "Fajar", Kelas: "XII IPA 1", Hari: "Selasa"})

	store := NewJadwalPiketStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	updated, err := store.Update(ctx, seeded.ID, JadwalPiketInput{NIS: "2210005", Nama: "Fajar", Kelas: "XII IPA 1", Hari: "Jumat"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Hari != "Jumat" {
		t.Errorf("hari: got %q", updated.Hari)
	}

	if err := store.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Errorf("expected empty collection, got %d", len(store.Items()))
	}
}
