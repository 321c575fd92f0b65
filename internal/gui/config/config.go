package config

import (
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
)

// Config は floatpanel の永続設定です。
// ウィンドウ状態は終了時に保存され、次回起動時の初期値になります。
type Config struct {
    // ウィンドウ状態
    Window WindowState `json:"window"`
    // ノート関連の既定値
    Note NoteDefaults `json:"note"`
}

type WindowState struct {
    Width       uint32 `json:"width"`  // 外枠・物理ピクセル
    Height      uint32 `json:"height"`
    AlwaysOnTop bool   `json:"always_on_top"`
}

type NoteDefaults struct {
    Dir      string  `json:"dir"`       // ダイアログの初期ディレクトリ（空=ホーム）
    FontSize int     `json:"font_size"`
    Opacity  float64 `json:"opacity"`   // パネルの不透明度。CSS側で適用する
}

const (
    DefaultWidth  = 420
    DefaultHeight = 560
)

func Default() *Config {
    return &Config{
        Window: WindowState{Width: DefaultWidth, Height: DefaultHeight, AlwaysOnTop: false},
        Note:   NoteDefaults{Dir: "", FontSize: 14, Opacity: 1.0},
    }
}

// Normalize は不正な値を既定値に戻す（旧設定や手編集された設定への耐性）。
func Normalize(c *Config) {
    if c == nil { return }
    if c.Window.Width == 0 { c.Window.Width = DefaultWidth }
    if c.Window.Height == 0 { c.Window.Height = DefaultHeight }
    if c.Note.FontSize <= 0 { c.Note.FontSize = 14 }
    if c.Note.Opacity <= 0 || c.Note.Opacity > 1.0 { c.Note.Opacity = 1.0 }
}

// 保存先パス（OS毎の規定の設定ディレクトリ配下）
func path() (string, error) {
    dir, err := os.UserConfigDir()
    if err != nil { return "", err }
    d := filepath.Join(dir, "floatpanel")
    if err := os.MkdirAll(d, 0o755); err != nil { return "", err }
    return filepath.Join(d, "config.json"), nil
}

// Load は設定を読み込みます。無い場合は (nil, os.ErrNotExist) を返します。
func Load() (*Config, error) {
    p, err := path()
    if err != nil { return nil, err }
    return loadFrom(p)
}

// Save は設定を保存します。
func Save(c *Config) error {
    if c == nil { return errors.New("nil config") }
    p, err := path()
    if err != nil { return err }
    return saveTo(p, c)
}

func loadFrom(p string) (*Config, error) {
    bt, err := os.ReadFile(p)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) { return nil, os.ErrNotExist }
        return nil, err
    }
    var c Config
    if err := json.Unmarshal(bt, &c); err != nil { return nil, err }
    return &c, nil
}

func saveTo(p string, c *Config) error {
    bt, err := json.MarshalIndent(c, "", "  ")
    if err != nil { return err }
    return os.WriteFile(p, bt, 0o600)
}
