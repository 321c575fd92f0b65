package main

import (
    "context"
    "embed"

    "github.com/wailsapp/wails/v2"
    "github.com/wailsapp/wails/v2/pkg/options"
    "github.com/wailsapp/wails/v2/pkg/options/assetserver"
    "github.com/wailsapp/wails/v2/pkg/options/mac"
    "github.com/wailsapp/wails/v2/pkg/options/windows"
)

// フロントエンド静的ファイルをバンドル
//go:embed all:frontend/dist
var assets embed.FS

func main() {
    app := NewApp()

    if err := wails.Run(&options.App{
        Title:       "floatpanel",
        Width:       int(app.cfg.Window.Width),
        Height:      int(app.cfg.Window.Height),
        MinWidth:    240,
        MinHeight:   180,
        AlwaysOnTop: app.cfg.Window.AlwaysOnTop,
        AssetServer: &assetserver.Options{ Assets: assets },
        OnStartup:  func(ctx context.Context) { app.startup(ctx) },
        OnShutdown: func(ctx context.Context) { app.shutdown(ctx) },
        Bind: []any{app},
        // 透過はウィンドウ生成時の設定とCSSで行う（コマンドでは制御しない）
        Mac: &mac.Options{
            TitleBar:             mac.TitleBarHiddenInset(),
            WebviewIsTransparent: true,
            WindowIsTranslucent:  true,
        },
        Windows: &windows.Options{
            WebviewIsTransparent: true,
            WindowIsTranslucent:  true,
            BackdropType:         windows.Acrylic,
        },
        BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},
    }); err != nil {
        panic(err)
    }
}
