package stores

import (
	"context"
	"testing"
	"time"

	"github.com/Nineteenwishes/uks-client/models"
)

func TestRiwayatCacheSession(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 100, NIS: "2210001", Nama: "Budi", Tanggal: "2024-06-01"})

	store := NewRiwayatStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #1: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Fatalf("items: got %d, want 1", len(store.Items()))
	}

	// Record baru di server tidak terlihat selama cache sesi masih terisi.
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 101, NIS: "2210002", Nama: "Citra", Tanggal: "2024-06-02"})
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #2: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Errorf("session cache should short-circuit refetch, got %d items", len(store.Items()))
	}

	store.Invalidate()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #3: %v", err)
	}
	if len(store.Items()) != 2 {
		t.Errorf("after Invalidate expected 2 items, got %d", len(store.Items()))
	}
}

func TestRiwayatEmptyCollectionIsNotCached(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)

	store := NewRiwayatStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #1: %v", err)
	}
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 102, NIS: "2210003", Tanggal: "2024-06-03"})
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #2: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Errorf("empty collection must not count as fresh, got %d items", len(store.Items()))
	}
}

func TestRiwayatCacheNone(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 103, NIS: "2210004", Tanggal: "2024-06-04"})

	store := NewRiwayatStore(client)
	store.SetCachePolicy(CacheNone, 0)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #1: %v", err)
	}
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 104, NIS: "2210005", Tanggal: "2024-06-05"})
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #2: %v", err)
	}
	if len(store.Items()) != 2 {
		t.Errorf("CacheNone must always refetch, got %d items", len(store.Items()))
	}
}

func TestRiwayatCacheTTL(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 105, NIS: "2210006", Tanggal: "2024-06-06"})

	store := NewRiwayatStore(client)
	store.SetCachePolicy(CacheTTL, 10*time.Millisecond)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #1: %v", err)
	}
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 106, NIS: "2210007", Tanggal: "2024-06-07"})

	// Masih segar: no-op.
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #2: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Errorf("within TTL expected cached 1 item, got %d", len(store.Items()))
	}

	time.Sleep(20 * time.Millisecond)
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll #3: %v", err)
	}
	if len(store.Items()) != 2 {
		t.Errorf("after TTL expected refetch with 2 items, got %d", len(store.Items()))
	}
}

func TestRiwayatArchive(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	kStore := NewKunjunganStore(client)
	rStore := NewRiwayatStore(client)
	ctx := context.Background()

	created, err := kStore.Create(ctx, KunjunganInput{NIS: "2210008", Nama: "Hana", Gejala: "Luka ringan"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Arsip kunjungan yang belum keluar harus ditolak di sisi client.
	if _, err := rStore.Archive(ctx, created); err == nil {
		t.Fatal("archiving an open kunjungan must fail")
	}

	out, err := kStore.CheckOut(ctx, created.ID)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	arch, err := rStore.Archive(ctx, out)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if arch.IDKunjungan != created.ID || arch.JamKeluar != out.JamKeluar {
		t.Errorf("archive mismatch: %+v", arch)
	}

	rStore.Invalidate()
	if err := rStore.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(rStore.Items()) != 1 {
		t.Errorf("expected archived record listed, got %d", len(rStore.Items()))
	}
}

func TestRiwayatDelete(t *testing.T) {
	srv, client := newTestEnv(t)
	loginAs(t, srv, client, models.RoleStaff)
	seeded := srv.SeedRiwayat(models.Riwayat{IDKunjungan: 107, NIS: "2210009", Tanggal: "2024-06-08"})

	store := NewRiwayatStore(client)
	ctx := context.Background()
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if err := store.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Errorf("expected empty collection, got %d", len(store.Items()))
	}
}
