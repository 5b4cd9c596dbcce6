package export

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/apitest"
	"github.com/Nineteenwishes/uks-client/models"
	"github.com/Nineteenwishes/uks-client/stores"
)

func newExportEnv(t *testing.T) (*apitest.Server, *Trigger) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, &api.MemoryTokenSource{})
	srv.SeedUser("Admin UKS", "admin1", "rahasia-uks", models.RoleAdmin)
	auth := stores.NewAuthStore(client)
	if _, err := auth.Login(context.Background(), stores.LoginInput{Username: "admin1", Password: "rahasia-uks"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, NewTrigger(client, t.TempDir())
}

func TestExportByYear(t *testing.T) {
	srv, trig := newExportEnv(t)
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 1, NIS: "2210001", Nama: "Budi", Tanggal: "2024-03-05"})
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 2, NIS: "2210002", Nama: "Citra", Tanggal: "2023-11-20"})

	path, err := trig.ByYear(context.Background(), 2024)
	if err != nil {
		t.Fatalf("ByYear: %v", err)
	}
	if filepath.Base(path) != ReportFilename {
		t.Errorf("filename: got %q, want %q", filepath.Base(path), ReportFilename)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	content := string(body)
	if !strings.Contains(content, "Budi") {
		t.Error("2024 record missing from report")
	}
	if strings.Contains(content, "Citra") {
		t.Error("2023 record must not be in the 2024 report")
	}
	if trig.LastError() != nil {
		t.Errorf("LastError: %v", trig.LastError())
	}
}

func TestExportByRange(t *testing.T) {
	srv, trig := newExportEnv(t)
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 3, NIS: "2210003", Nama: "Dewi", Tanggal: "2024-06-10"})
	srv.SeedRiwayat(models.Riwayat{IDKunjungan: 4, NIS: "2210004", Nama: "Eka", Tanggal: "2024-07-01"})

	path, err := trig.ByRange(context.Background(), "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("ByRange: %v", err)
	}
	body, _ := os.ReadFile(path)
	if !strings.Contains(string(body), "Dewi") || strings.Contains(string(body), "Eka") {
		t.Errorf("range filter wrong, report:\n%s", body)
	}
}

func TestExportByRangeRejectsBadDate(t *testing.T) {
	_, trig := newExportEnv(t)

	if _, err := trig.ByRange(context.Background(), "01/06/2024", "2024-06-30"); err == nil {
		t.Fatal("expected format error")
	}
	if trig.LastError() == nil {
		t.Error("failure must be recorded")
	}
}

func TestExportBackendFailureRecordedNotFatal(t *testing.T) {
	srv, trig := newExportEnv(t)
	srv.FailNext(http.StatusInternalServerError, "Gagal membuat laporan")

	if _, err := trig.ByYear(context.Background(), 2024); err == nil {
		t.Fatal("expected backend failure to surface")
	}
	if trig.LastError() == nil {
		t.Error("failure must be recorded")
	}
	if _, err := os.Stat(filepath.Join(trig.Dir, ReportFilename)); !os.IsNotExist(err) {
		t.Error("no file should be written on failure")
	}

	// Percobaan berikutnya jalan normal: kegagalan tidak memblokir.
	if _, err := trig.ByYear(context.Background(), 2024); err != nil {
		t.Fatalf("retry by user: %v", err)
	}
	if trig.LastError() != nil {
		t.Errorf("LastError should reset on success, got %v", trig.LastError())
	}
}
