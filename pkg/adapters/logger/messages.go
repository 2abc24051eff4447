package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Run level messages (info)
		"Drawing with seed %d":          "シード %d で描画します",
		"Output saved to %s":            "出力を %s に保存しました",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Orchestrator
		"Composing scene":                   "シーンを構成中",
		"Drawing %d shapes on %dx%d canvas": "%d 個の図形を %dx%d キャンバスに描画中",
		"Encoding %s":                       "%s にエンコード中",

		// Compose stage
		"Composed %d explicit and %d random shapes": "指定図形 %d 個とランダム図形 %d 個を構成しました",
		"Shape %d: %v": "図形 %d: %v",

		// Raster stage
		"Drawing %d shapes":                 "%d 個の図形を描画中",
		"Drawing %d shapes with %d workers": "%d 個の図形を %d ワーカーで描画中",
		"Drew %d shapes, %d pixel writes":   "%d 個の図形を描画しました (ピクセル書き込み %d 回)",

		// Encode stage
		"Scaling %dx%d to %dx%d": "%dx%d を %dx%d に拡大縮小中",
		"Encoded %s: %d bytes":   "%s エンコード完了: %d バイト",

		// Warnings
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",
		"Failed to write summary: %s":     "サマリーの書き込みに失敗しました: %s",

		// Errors
		"Output %s already exists":    "出力 %s は既に存在します",
		"Failed to compose scene: %s": "シーンの構成に失敗しました: %s",
		"Failed to draw shapes: %s":   "図形の描画に失敗しました: %s",
		"Failed to encode image: %s":  "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
	})
}
