// Package main provides localization for the shapedraw CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Scene":   "シーン",
		"Output":  "出力先",
		"Canvas":  "キャンバス",
		"Drawing": "描画",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Root command
		"Draw points, lines and shapes onto a raster image": "点・線・図形をラスター画像に描画",

		// Draw command
		"Draw the shapes described in a scene file":                   "シーンファイルに記述された図形を描画",
		"Load a YAML scene file, draw its shapes and save the image.": "YAMLシーンファイルを読み込み、図形を描画して画像を保存します。",
		"Scene file (YAML)": "シーンファイル（YAML）",

		// Random command
		"Draw randomly generated shapes":                               "ランダムに生成した図形を描画",
		"Generate random shapes within the canvas and save the image.": "キャンバス内にランダムな図形を生成し、画像を保存します。",
		"Number of random points":                                      "ランダムな点の数",
		"Number of random lines":                                       "ランダムな線の数",
		"Number of random triangles":                                   "ランダムな三角形の数",
		"Number of random rectangles":                                  "ランダムな矩形の数",
		"Number of random circles":                                     "ランダムな円の数",

		// Version command
		"Show version information": "バージョン情報を表示",
		"shapedraw version %s":     "shapedraw バージョン %s",

		// Output flags
		"Output image path": "出力画像のパス",
		"Output format (png, jpeg, bmp, tiff; default from extension)": "出力形式（png, jpeg, bmp, tiff、省略時は拡張子から判定）",
		"JPEG quality (1-100)":                         "JPEG品質（1-100）",
		"Output scale factor":                          "出力の拡大縮小率",
		"Overwrite an existing output file":            "既存の出力ファイルを上書き",
		"Output run summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Canvas flags
		"Canvas width in pixels":                "キャンバスの幅（ピクセル）",
		"Canvas height in pixels":               "キャンバスの高さ（ピクセル）",
		"Background color (hex, e.g., #000000)": "背景色（16進数、例: #000000）",

		// Drawing flags
		"Random seed (0 = time-based)":        "乱数シード（0 = 時刻から生成）",
		"Number of drawing workers":           "描画ワーカー数",
		"Circle algorithm (sample, midpoint)": "円の描画方式（sample, midpoint）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",
	})
}
