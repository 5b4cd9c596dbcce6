// Package export meminta laporan riwayat kunjungan yang sudah diformat
// backend lalu menyimpannya sebagai file lokal.
package export

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// ReportFilename adalah nama file tetap untuk hasil export.
const ReportFilename = "laporan-riwayat-kunjungan-uks.csv"

type rawGetter interface {
	GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// Trigger mengunduh laporan ke direktori Dir. Kegagalan dicatat di LastError
// dan dikembalikan ke pemanggil; tidak ada retry, UI tidak diblokir.
type Trigger struct {
	c   rawGetter
	Dir string

	mu      sync.Mutex
	lastErr error
}

func NewTrigger(c rawGetter, dir string) *Trigger {
	return &Trigger{c: c, Dir: dir}
}

// ByYear mengunduh laporan satu tahun kalender dan mengembalikan path file.
func (t *Trigger) ByYear(ctx context.Context, year int) (string, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	return t.download(ctx, q)
}

// ByRange mengunduh laporan untuk rentang tanggal YYYY-MM-DD (inklusif).
func (t *Trigger) ByRange(ctx context.Context, startDate, endDate string) (string, error) {
	for _, d := range []string{startDate, endDate} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			err = fmt.Errorf("tanggal %q tidak valid, format harus YYYY-MM-DD", d)
			t.record(err)
			return "", err
		}
	}
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	return t.download(ctx, q)
}

func (t *Trigger) download(ctx context.Context, q url.Values) (string, error) {
	body, err := t.c.GetRaw(ctx, "/riwayat-kunjungan-uks/export", q)
	if err != nil {
		t.record(err)
		return "", err
	}
	path := filepath.Join(t.Dir, ReportFilename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.record(err)
		return "", err
	}
	t.record(nil)
	return path, nil
}

func (t *Trigger) record(err error) {
	t.mu.Lock()
	t.lastErr = err
	t.mu.Unlock()
}

// LastError mengembalikan kegagalan export terakhir, atau nil.
func (t *Trigger) LastError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
