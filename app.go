package main

import (
    "context"
    "errors"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    "floatpanel/internal/gui/config"
    "floatpanel/internal/logger"
    "floatpanel/internal/winctl"

    "github.com/wailsapp/wails/v2/pkg/runtime"
)

type App struct {
    ctx context.Context
    cfg *config.Config
    log *logger.Logger
    win *winctl.Dispatcher
}

func NewApp() *App {
    // 設定を起動時に読み込み（存在しなければデフォルト）
    cfg, _ := config.Load()
    if cfg == nil { cfg = config.Default() }
    config.Normalize(cfg)

    lg, err := logger.New(logger.Options{})
    if err != nil {
        // ログが使えなくてもアプリは起動する
        log.Printf("ログ初期化に失敗: %v", err)
    }
    return &App{cfg: cfg, log: lg, win: winctl.NewDispatcher(nil)}
}

func (a *App) startup(ctx context.Context) {
    a.ctx = ctx
    a.emitLog("info", "起動しました")
    // 前回の「常に手前に表示」を復元
    if a.cfg.Window.AlwaysOnTop {
        if err := a.win.SetAlwaysOnTop(ctx, true); err != nil {
            a.emitLog("error", fmt.Sprintf("常に手前に表示の復元に失敗: %v", err))
        }
    }
}

func (a *App) shutdown(ctx context.Context) {
    // 終了時のウィンドウサイズを保存して次回起動に引き継ぐ
    if sz, err := a.win.WindowSize(ctx); err == nil && sz.Width > 0 && sz.Height > 0 {
        a.cfg.Window.Width, a.cfg.Window.Height = sz.Width, sz.Height
    }
    if err := config.Save(a.cfg); err != nil {
        a.emitLog("error", fmt.Sprintf("設定の保存に失敗: %v", err))
    }
    if a.log != nil { a.log.Close() }
}

// --- ウィンドウ操作コマンド ---

// SetAlwaysOnTop は「常に手前に表示」を切り替え、成功したら設定にも反映する。
func (a *App) SetAlwaysOnTop(alwaysOnTop bool) error {
    if err := a.win.SetAlwaysOnTop(a.ctx, alwaysOnTop); err != nil {
        return err
    }
    a.cfg.Window.AlwaysOnTop = alwaysOnTop
    return nil
}

// SetWindowTransparent は互換のためのダミー。透過はCSS側で制御する。
func (a *App) SetWindowTransparent(transparent bool) error {
    return a.win.SetWindowTransparent(a.ctx, transparent)
}

// GetWindowOpacity は常に 1.0（実際の不透明度はCSSで適用）。
func (a *App) GetWindowOpacity() (float64, error) {
    return a.win.WindowOpacity(a.ctx)
}

// GetWindowSize は外枠サイズ（物理ピクセル）を返す。
func (a *App) GetWindowSize() (winctl.Size, error) {
    return a.win.WindowSize(a.ctx)
}

// SetWindowSize は外枠サイズを変更する。範囲チェックはウィンドウシステム側に任せる。
func (a *App) SetWindowSize(width, height uint32) error {
    return a.win.SetWindowSize(a.ctx, width, height)
}

// --- 設定API ---

func (a *App) GetConfig() (*config.Config, error) {
    if a.cfg == nil { return config.Default(), nil }
    return a.cfg, nil
}

func (a *App) SaveConfig(c *config.Config) error {
    if c == nil { return errors.New("config is nil") }
    config.Normalize(c)
    a.cfg = c
    if err := config.Save(c); err != nil { return err }
    a.emitLog("info", "設定を保存しました")
    return nil
}

// --- ノート入出力（ファイル・ダイアログ・外部オープン） ---

// OpenNoteDialog はファイル選択ダイアログを表示し、選択されたパスを返す（キャンセル時は空文字）。
func (a *App) OpenNoteDialog() (string, error) {
    if a.ctx == nil { return "", errors.New("no context") }
    opts := runtime.OpenDialogOptions{
        Title:            "ノートを開く",
        DefaultDirectory: a.cfg.Note.Dir,
        Filters: []runtime.FileFilter{
            {DisplayName: "テキスト (*.txt;*.md)", Pattern: "*.txt;*.md"},
            {DisplayName: "すべてのファイル", Pattern: "*"},
        },
    }
    return runtime.OpenFileDialog(a.ctx, opts)
}

// SaveNoteDialog は保存先選択ダイアログを表示し、選択されたパスを返す（キャンセル時は空文字）。
func (a *App) SaveNoteDialog() (string, error) {
    if a.ctx == nil { return "", errors.New("no context") }
    opts := runtime.SaveDialogOptions{
        Title:            "ノートを保存",
        DefaultDirectory: a.cfg.Note.Dir,
        DefaultFilename:  "note.txt",
    }
    return runtime.SaveFileDialog(a.ctx, opts)
}

// ReadNote は指定パスのテキストを読み込む。
func (a *App) ReadNote(path string) (string, error) {
    if strings.TrimSpace(path) == "" { return "", errors.New("パスが空です") }
    bt, err := os.ReadFile(path)
    if err != nil { return "", fmt.Errorf("読み込みに失敗: %w", err) }
    return string(bt), nil
}

// WriteNote は指定パスへテキストを書き込む。
func (a *App) WriteNote(path, text string) error {
    if strings.TrimSpace(path) == "" { return errors.New("パスが空です") }
    if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
        return fmt.Errorf("書き込みに失敗: %w", err)
    }
    a.emitLog("info", fmt.Sprintf("保存しました: %s", path))
    return nil
}

// OpenExternalURL は既定ブラウザでURLを開く。
func (a *App) OpenExternalURL(url string) error {
    if a.ctx == nil { return errors.New("no context") }
    runtime.BrowserOpenURL(a.ctx, url)
    return nil
}

// ログイベント
func (a *App) emitLog(level, msg string) {
    if a.log != nil {
        switch level {
        case "error":
            a.log.Error(msg)
        case "warn":
            a.log.Warn(msg)
        default:
            a.log.Info(msg)
        }
    } else {
        log.Printf("[%s] %s", level, msg)
    }
    if a.ctx != nil {
        runtime.EventsEmit(a.ctx, "log", map[string]any{"level": level, "msg": msg, "time": time.Now().Format(time.RFC3339)})
    }
}
