// Package main provides localization for the placeholder CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI output and the bulk summary.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate placeholder images by size, over HTTP or from the command line.": "サイズを指定してプレースホルダー画像を生成します（HTTPまたはコマンドライン）。",

		// Bulk command
		"Generating %d images...": "%d 枚の画像を生成中...",

		// Version command
		"placeholder version %s": "placeholder バージョン %s",

		// Summary content
		"Bulk Summary":         "一括生成サマリー",
		"Request":              "リクエスト",
		"Item":                 "項目",
		"Value":                "値",
		"Dimensions":           "サイズ",
		"Count":                "枚数",
		"Text":                 "テキスト",
		"Color":                "背景色",
		"Same Background":      "背景色を統一",
		"Numbering":            "番号付け",
		"Yes":                  "はい",
		"No":                   "いいえ",
		"Images":               "画像",
		"File":                 "ファイル",
		"Background":           "背景",
		"Size":                 "容量",
		"Output":               "出力",
		"Total Image Size":     "画像の合計容量",
		"Distinct Backgrounds": "背景色の種類",
		"Archive":              "アーカイブ",
		"Elapsed":              "所要時間",
		"Generated at":         "生成日時",
	})
}
