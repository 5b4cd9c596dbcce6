package stores

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/Nineteenwishes/uks-client/models"
)

func TestSiswaCreateThenFetchAll(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	store := NewSiswaStore(client)
	ctx := context.Background()

	created, err := store.Create(ctx, SiswaInput{NIS: "2210001", Nama: "Budi Santoso", Kelas: "XI IPA 2"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-assigned id")
	}

	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	found := false
	for _, s := range store.Items() {
		if s.ID == created.ID && s.NIS == "2210001" && s.Nama == "Budi Santoso" && s.Kelas == "XI IPA 2" {
			found = true
		}
	}
	if !found {
		t.Errorf("created siswa missing from fetched collection: %+v", store.Items())
	}
}

func TestSiswaCreateValidation(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	store := NewSiswaStore(client)

	_, err := store.Create(context.Background(), SiswaInput{NIS: "2210002"})
	f := AsFailure(err)
	if f == nil || f.Kind != KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(f.Fields["nama"]) == 0 || len(f.Fields["kelas"]) == 0 {
		t.Errorf("expected field errors for nama and kelas, got %v", f.Fields)
	}
	if len(store.Items()) != 0 {
		t.Error("validation failure must not touch the local collection")
	}
	if f.JoinedMessages() == "" {
		t.Error("expected joined field messages")
	}
}

func TestSiswaFetchAllIdempotent(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	srv.SeedSiswa(models.Siswa{NIS: "2210003", Nama: "Citra", Kelas: "X IPS 1"})
	srv.SeedSiswa(models.Siswa{NIS: "2210004", Nama: "Dewi", Kelas: "X IPS 1"})

	store := NewSiswaStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #1: %v", err)
	}
	first := store.Items()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #2: %v", err)
	}
	second := store.Items()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("fetchAll not idempotent: %+v vs %+v", first, second)
	}
}

func TestSiswaGetByNIS(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	seeded := srv.SeedSiswa(models.Siswa{NIS: "2210005", Nama: "Eka", Kelas: "XII IPA 1"})

	store := NewSiswaStore(client)
	got, err := store.GetByNIS(context.Background(), "2210005")
	if err != nil {
		t.Fatalf("GetByNIS: %v", err)
	}
	if got.ID != seeded.ID || got.Nama != "Eka" {
		t.Errorf("got %+v", got)
	}

	_, err = store.GetByNIS(context.Background(), "9999999")
	if f := AsFailure(err); f == nil || f.Kind != KindNotFound {
		t.Errorf("expected not-found failure, got %v", err)
	}
}

func TestSiswaUpdateReplacesLocal(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	seeded := srv.SeedSiswa(models.Siswa{NIS: "2210006", Nama: "Fajar", Kelas: "X IPA 3"})

	store := NewSiswaStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	updated, err := store.Update(ctx, seeded.ID, SiswaInput{NIS: "2210006", Nama: "Fajar", Kelas: "XI IPA 3"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Kelas != "XI IPA 3" {
		t.Errorf("kelas: got %q", updated.Kelas)
	}
	items := store.Items()
	if len(items) != 1 || items[0].Kelas != "XI IPA 3" {
		t.Errorf("local collection not replaced: %+v", items)
	}
}

func TestSiswaDeleteNonOptimistic(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	seeded := srv.SeedSiswa(models.Siswa{NIS: "2210007", Nama: "Gita", Kelas: "XII IPS 2"})

	store := NewSiswaStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	srv.FailNext(http.StatusInternalServerError, "Gagal menghapus")
	if err := store.Delete(ctx, seeded.ID); err == nil {
		t.Fatal("expected delete to fail")
	}
	if len(store.Items()) != 1 {
		t.Fatal("rejected delete must leave the local record in place")
	}

	if err := store.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Error("confirmed delete must remove the local record")
	}
}
