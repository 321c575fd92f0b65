package winctl

import (
    "context"
    "errors"

    "github.com/wailsapp/wails/v2/pkg/runtime"
)

// WailsHost は wails runtime によるウィンドウ操作。
type WailsHost struct{}

// wails runtime は frontend を持たない context を渡すとプロセスごと落とすため、
// 呼び出し前に確認してエラーに変換する。
func checkCtx(ctx context.Context) error {
    if ctx == nil {
        return errors.New("ウィンドウが初期化されていません")
    }
    if ctx.Value("frontend") == nil {
        return errors.New("ウィンドウコンテキストが無効です")
    }
    return nil
}

func (WailsHost) SetAlwaysOnTop(ctx context.Context, alwaysOnTop bool) error {
    if err := checkCtx(ctx); err != nil { return err }
    runtime.WindowSetAlwaysOnTop(ctx, alwaysOnTop)
    return nil
}

func (WailsHost) Size(ctx context.Context) (int, int, error) {
    if err := checkCtx(ctx); err != nil { return 0, 0, err }
    w, h := runtime.WindowGetSize(ctx)
    return w, h, nil
}

func (WailsHost) SetSize(ctx context.Context, width, height int) error {
    if err := checkCtx(ctx); err != nil { return err }
    runtime.WindowSetSize(ctx, width, height)
    return nil
}
