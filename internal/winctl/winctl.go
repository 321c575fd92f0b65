package winctl

import (
    "context"
    "fmt"
)

// Size はウィンドウの外枠サイズ（物理ピクセル）。
type Size struct {
    Width  uint32 `json:"width"`
    Height uint32 `json:"height"`
}

// Host は実際のウィンドウ操作を担うランタイム側のAPI。
// 本番では wails runtime、テストではフェイクを差し込む。
type Host interface {
    SetAlwaysOnTop(ctx context.Context, alwaysOnTop bool) error
    Size(ctx context.Context) (width, height int, err error)
    SetSize(ctx context.Context, width, height int) error
}

// Dispatcher はフロントエンドからのウィンドウ操作コマンドを Host に中継する。
// 状態は持たず、各呼び出しは独立。失敗はそのままエラーとして返す（リトライなし）。
type Dispatcher struct {
    host Host
}

func NewDispatcher(h Host) *Dispatcher {
    if h == nil { h = WailsHost{} }
    return &Dispatcher{host: h}
}

// SetAlwaysOnTop は「常に手前に表示」を切り替える。
func (d *Dispatcher) SetAlwaysOnTop(ctx context.Context, alwaysOnTop bool) error {
    if err := d.host.SetAlwaysOnTop(ctx, alwaysOnTop); err != nil {
        return fmt.Errorf("常に手前に表示の切替に失敗: %w", err)
    }
    return nil
}

// SetWindowTransparent はAPI互換のためのダミー。
// 透過はウィンドウ生成時の設定とフロントエンドのスタイルで制御しているため、
// ここでは引数を無視して常に成功を返す。実装を足さないこと。
func (d *Dispatcher) SetWindowTransparent(ctx context.Context, transparent bool) error {
    return nil
}

// WindowOpacity は常に 1.0 を返す。実際の不透明度はCSS側で管理しており、
// このレイヤでは追跡していない。
func (d *Dispatcher) WindowOpacity(ctx context.Context) (float64, error) {
    return 1.0, nil
}

// WindowSize は外枠サイズを取得する。
func (d *Dispatcher) WindowSize(ctx context.Context) (Size, error) {
    w, h, err := d.host.Size(ctx)
    if err != nil {
        return Size{}, fmt.Errorf("ウィンドウサイズの取得に失敗: %w", err)
    }
    return Size{Width: uint32(w), Height: uint32(h)}, nil
}

// SetWindowSize は外枠サイズを変更する。最小・最大サイズの制限は
// ウィンドウシステム側に任せる（ここでは検証しない）。
func (d *Dispatcher) SetWindowSize(ctx context.Context, width, height uint32) error {
    if err := d.host.SetSize(ctx, int(width), int(height)); err != nil {
        return fmt.Errorf("ウィンドウサイズの変更に失敗: %w", err)
    }
    return nil
}
