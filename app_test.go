package main

import (
    "context"
    "errors"
    "os"
    "path/filepath"
    "testing"

    "floatpanel/internal/gui/config"
    "floatpanel/internal/winctl"
)

// stubHost はアプリ層テスト用の最小ウィンドウ。
type stubHost struct {
    alwaysOnTop bool
    w, h        int
    fail        bool
}

func (s *stubHost) SetAlwaysOnTop(ctx context.Context, b bool) error {
    if s.fail { return errors.New("host failure") }
    s.alwaysOnTop = b
    return nil
}

func (s *stubHost) Size(ctx context.Context) (int, int, error) {
    if s.fail { return 0, 0, errors.New("host failure") }
    return s.w, s.h, nil
}

func (s *stubHost) SetSize(ctx context.Context, w, h int) error {
    if s.fail { return errors.New("host failure") }
    s.w, s.h = w, h
    return nil
}

func newTestApp(h winctl.Host) *App {
    return &App{cfg: config.Default(), win: winctl.NewDispatcher(h)}
}

func TestWindowCommandsBeforeStartup(t *testing.T) {
    // startup 前（ctx なし）は実ランタイムへ到達せずエラーになる
    a := newTestApp(nil)

    if err := a.SetAlwaysOnTop(true); err == nil {
        t.Fatal("SetAlwaysOnTop: エラーになるはず")
    }
    if _, err := a.GetWindowSize(); err == nil {
        t.Fatal("GetWindowSize: エラーになるはず")
    }
    if err := a.SetWindowSize(800, 600); err == nil {
        t.Fatal("SetWindowSize: エラーになるはず")
    }
    // ダミー実装の2つは ctx が無くても成功する
    if err := a.SetWindowTransparent(true); err != nil {
        t.Fatalf("SetWindowTransparent: %v", err)
    }
    if v, err := a.GetWindowOpacity(); err != nil || v != 1.0 {
        t.Fatalf("GetWindowOpacity=(%v,%v); want (1.0,nil)", v, err)
    }
}

func TestSetAlwaysOnTopPersistsFlag(t *testing.T) {
    h := &stubHost{}
    a := newTestApp(h)
    a.ctx = context.Background()

    if err := a.SetAlwaysOnTop(true); err != nil {
        t.Fatalf("SetAlwaysOnTop(true): %v", err)
    }
    if !h.alwaysOnTop || !a.cfg.Window.AlwaysOnTop {
        t.Fatalf("host=%v cfg=%v; want true/true", h.alwaysOnTop, a.cfg.Window.AlwaysOnTop)
    }
    if err := a.SetAlwaysOnTop(false); err != nil {
        t.Fatalf("SetAlwaysOnTop(false): %v", err)
    }
    if h.alwaysOnTop || a.cfg.Window.AlwaysOnTop {
        t.Fatalf("host=%v cfg=%v; want false/false", h.alwaysOnTop, a.cfg.Window.AlwaysOnTop)
    }
}

func TestSetAlwaysOnTopFailureDoesNotPersist(t *testing.T) {
    a := newTestApp(&stubHost{fail: true})
    a.ctx = context.Background()

    if err := a.SetAlwaysOnTop(true); err == nil {
        t.Fatal("エラーになるはず")
    }
    if a.cfg.Window.AlwaysOnTop {
        t.Fatal("失敗時は設定に反映しない")
    }
}

func TestSetThenGetWindowSizeViaApp(t *testing.T) {
    a := newTestApp(&stubHost{})
    a.ctx = context.Background()

    if err := a.SetWindowSize(800, 600); err != nil {
        t.Fatalf("SetWindowSize: %v", err)
    }
    sz, err := a.GetWindowSize()
    if err != nil {
        t.Fatalf("GetWindowSize: %v", err)
    }
    if sz.Width != 800 || sz.Height != 600 {
        t.Fatalf("size=(%d,%d); want (800,600)", sz.Width, sz.Height)
    }
}

func TestReadWriteNote(t *testing.T) {
    a := newTestApp(nil)
    p := filepath.Join(t.TempDir(), "note.txt")

    if err := a.WriteNote(p, "メモ本文"); err != nil {
        t.Fatalf("WriteNote: %v", err)
    }
    got, err := a.ReadNote(p)
    if err != nil {
        t.Fatalf("ReadNote: %v", err)
    }
    if got != "メモ本文" {
        t.Fatalf("ReadNote=%q; want %q", got, "メモ本文")
    }
    if fi, err := os.Stat(p); err == nil && fi.Mode().Perm() != 0o600 {
        t.Fatalf("perm=%v; want 0600", fi.Mode().Perm())
    }

    // 空パスは両方エラー
    if err := a.WriteNote("  ", "x"); err == nil {
        t.Fatal("空パスの書き込みはエラーになるはず")
    }
    if _, err := a.ReadNote(""); err == nil {
        t.Fatal("空パスの読み込みはエラーになるはず")
    }
}
