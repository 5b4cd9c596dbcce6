// Package app merangkai client, store, dan trigger export menjadi satu
// context aplikasi yang dioper eksplisit ke lapisan presentasi.
package app

import (
	"context"
	"errors"

	"github.com/Nineteenwishes/uks-client/api"
	"github.com/Nineteenwishes/uks-client/config"
	"github.com/Nineteenwishes/uks-client/export"
	"github.com/Nineteenwishes/uks-client/stores"
)

// App memegang seluruh state aplikasi sisi client. Setiap koleksi dimiliki
// eksklusif oleh store-nya; tidak ada tulisan lintas store.
type App struct {
	Config *config.Config
	Client *api.Client

	Auth      *stores.AuthStore
	Siswa     *stores.SiswaStore
	Obat      *stores.ObatStore
	Kunjungan *stores.KunjunganStore
	Riwayat   *stores.RiwayatStore
	Jadwal    *stores.JadwalPiketStore
	Export    *export.Trigger
}

// New merangkai App dari konfigurasi. Token dipersist lewat file sesuai
// cfg.TokenFile; laporan export disimpan di direktori kerja.
func New(cfg *config.Config) *App {
	client := api.NewClient(cfg.APIBaseURL, api.NewFileTokenSource(cfg.TokenFile))
	return &App{
		Config:    cfg,
		Client:    client,
		Auth:      stores.NewAuthStore(client),
		Siswa:     stores.NewSiswaStore(client),
		Obat:      stores.NewObatStore(client),
		Kunjungan: stores.NewKunjunganStore(client),
		Riwayat:   stores.NewRiwayatStore(client),
		Jadwal:    stores.NewJadwalPiketStore(client),
		Export:    export.NewTrigger(client, "."),
	}
}

// Init memulihkan sesi dari token yang dipersist. Tanpa token tersimpan atau
// dengan token yang sudah tidak valid, Init sukses dengan sesi kosong; token
// basi sudah dibersihkan oleh Restore.
func (a *App) Init(ctx context.Context) error {
	_, err := a.Auth.Restore(ctx)
	if err == nil {
		return nil
	}
	var f *stores.Failure
	if errors.As(err, &f) && f.Kind == stores.KindUnauthorized {
		return nil
	}
	return err
}

// Teardown membongkar sesi aktif: logout ke server plus pembersihan memori
// dan token. Tanpa sesi aktif, Teardown adalah no-op.
func (a *App) Teardown(ctx context.Context) error {
	if !a.Auth.Authenticated() {
		return nil
	}
	return a.Auth.Logout(ctx)
}
