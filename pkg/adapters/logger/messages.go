package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating %d images of %s":      "%[2]s の画像を %[1]d 枚生成中",
		"Generated %d images in %d ms":    "%d 枚の画像を %d ms で生成しました",
		"Image %dx%d rendered: %d bytes":  "%dx%d の画像を描画しました: %d バイト",
		"Output saved to %s":              "出力を %s に保存しました",
		"Summary saved to %s":             "サマリーを %s に保存しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Failed to compose image: %s":     "画像の合成に失敗しました: %s",
		"Failed to generate images: %s":   "画像の一括生成に失敗しました: %s",
		"Failed to package images: %s":    "画像のパッケージ化に失敗しました: %s",
		"Failed to write summary: %s":     "サマリーの書き込みに失敗しました: %s",
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",

		// Fonts
		"Using font %s":                                            "フォント %s を使用します",
		"Resolved font %s at size %d":                              "フォント %s をサイズ %d で解決しました",
		"Skipping font %s: %s":                                     "フォント %s をスキップします: %s",
		"Font %s cannot be used at size %d: %s":                    "フォント %s はサイズ %d で使用できません: %s",
		"No system font available, using built-in font at size %d": "利用可能なシステムフォントがありません。サイズ %d で内蔵フォントを使用します",

		// Compose and bulk stages
		"Composed %s image #%d: %d lines, font size %d, %d bytes": "%s の画像 #%d を合成: %d 行, フォントサイズ %d, %d バイト",
		"Composing %d images with %d workers":                     "%d 枚の画像を %d ワーカーで合成中",
		"Composed %d images":                                      "%d 枚の画像を合成しました",

		// Pack stage
		"Packed %d images into %s (%d bytes)": "%d 枚の画像を %s にまとめました (%d バイト)",
		"Prepared %d preview images":          "%d 枚のプレビュー画像を準備しました",

		// Server
		"Listening on %s":                     "%s で待ち受け中",
		"Shutting down server":                "サーバーを停止しています",
		"%s %s %d %d bytes in %d ms (%s)":     "%s %s %d %d バイト %d ms (%s)",
		"Request failed: %s":                  "リクエストの処理に失敗しました: %s",
		"Failed to write response for %s: %s": "%s への応答の書き込みに失敗しました: %s",
		"Failed to write error response: %s":  "エラー応答の書き込みに失敗しました: %s",
		"Panic serving %s: %v":                "%s の処理中にパニックが発生しました: %v",
		"Failed to open browser for %s: %s":   "%s をブラウザで開けませんでした: %s",
	})
}
