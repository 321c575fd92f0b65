// Package logger はアプリのログ出力（回転付きファイル + コンソール）を提供する。
package logger

import (
    "context"
    "fmt"
    "io"
    "log/slog"
    "os"
    "path/filepath"

    "github.com/fatih/color"
    "gopkg.in/natefinch/lumberjack.v2"
)

const (
    // 回転前の最大サイズ（MB）
    defaultMaxSizeMB = 2
    // 保持する旧ログファイル数
    defaultMaxBackups = 3
    // 旧ログの保持日数
    defaultMaxAgeDays = 28
)

// Options はロガーの設定。
type Options struct {
    Dir        string // 空なら os.UserConfigDir()/floatpanel
    Verbose    bool   // true で Debug もコンソールに出す
    MaxSizeMB  int
    MaxBackups int
    MaxAgeDays int
}

// Logger はファイルとコンソールの二重出力ロガー。
// ファイル側は lumberjack で回転する。
type Logger struct {
    file    *slog.Logger
    console *slog.Logger
    lj      *lumberjack.Logger
    path    string
}

// LogPath は設定からログファイルのパスを決める。
func LogPath(opts Options) (string, error) {
    dir := opts.Dir
    if dir == "" {
        base, err := os.UserConfigDir()
        if err != nil { return "", err }
        dir = filepath.Join(base, "floatpanel")
    }
    return filepath.Join(dir, "floatpanel.log"), nil
}

// New はロガーを作る。ログディレクトリが無ければ作成する。
func New(opts Options) (*Logger, error) {
    if opts.MaxSizeMB == 0 { opts.MaxSizeMB = defaultMaxSizeMB }
    if opts.MaxBackups == 0 { opts.MaxBackups = defaultMaxBackups }
    if opts.MaxAgeDays == 0 { opts.MaxAgeDays = defaultMaxAgeDays }

    p, err := LogPath(opts)
    if err != nil { return nil, err }
    if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
        return nil, fmt.Errorf("ログディレクトリを作成できません: %w", err)
    }

    lj := &lumberjack.Logger{
        Filename:   p,
        MaxSize:    opts.MaxSizeMB,
        MaxBackups: opts.MaxBackups,
        MaxAge:     opts.MaxAgeDays,
        Compress:   true,
    }

    fileLogger := slog.New(slog.NewTextHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug}))
    consoleLogger := slog.New(&consoleHandler{w: os.Stdout, verbose: opts.Verbose})

    return &Logger{file: fileLogger, console: consoleLogger, lj: lj, path: p}, nil
}

// Path は現在のログファイルのパスを返す。
func (l *Logger) Path() string { return l.path }

// Close はログファイルを閉じる。
func (l *Logger) Close() {
    if l.lj != nil {
        if err := l.lj.Close(); err != nil {
            fmt.Fprintf(os.Stderr, "ログファイルを閉じられませんでした: %v\n", err)
        }
    }
}

func (l *Logger) Debug(msg string, args ...any) { l.file.Debug(msg, args...); l.console.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.file.Info(msg, args...); l.console.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.file.Warn(msg, args...); l.console.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.file.Error(msg, args...); l.console.Error(msg, args...) }

// consoleHandler はタイムスタンプ無しの簡易コンソール出力。
// レベルに応じて色を付ける。
type consoleHandler struct {
    w       io.Writer
    verbose bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
    if !h.verbose && level < slog.LevelInfo { return false }
    return true
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
    var prefix string
    var c *color.Color
    switch r.Level {
    case slog.LevelError:
        prefix, c = "ERROR: ", color.New(color.FgRed)
    case slog.LevelWarn:
        prefix, c = "WARN: ", color.New(color.FgYellow)
    case slog.LevelDebug:
        prefix, c = "DEBUG: ", color.New(color.FgCyan)
    }

    msg := r.Message
    if r.NumAttrs() > 0 {
        r.Attrs(func(a slog.Attr) bool {
            msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
            return true
        })
    }

    if c != nil {
        _, _ = c.Fprintf(h.w, "%s%s\n", prefix, msg)
        return nil
    }
    _, _ = fmt.Fprintf(h.w, "%s%s\n", prefix, msg)
    return nil
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }
