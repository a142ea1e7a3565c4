// Package i18n holds the English and Japanese strings used by reports and
// the terminal UI.
package i18n

import "strings"

// Supported languages.
const (
	English  = "en"
	Japanese = "ja"
)

// DefaultLanguage is used for unknown languages and missing keys.
const DefaultLanguage = English

var dictionaries = map[string]map[string]string{
	English: {
		"app_name":             "Fast logbook",
		"app_description":      "Time-stamped work notes",
		"configure":            "Configure",
		"view_formatted_log":   "View formatted log",
		"export_formatted_log": "Export formatted log",
		"shortcut_items_title": "Shortcut items",
		"shortcut_1":           "@work +PromotionalExams;Study",
		"shortcut_2":           "@private +housework;Cleaning",
		"shortcut_3":           "@work +PromotionalExams;Research",
		"shortcut_4":           "@work +PromotionalExams;Report",
		"shortcut_5":           "@work +PromotionalExams;Presentation",
		"shortcut_6":           "",
		"shortcut_7":           "",
		"shortcut_8":           "",
		"shortcut_9":           "",
		"shortcut_help":        "Tags beginning with \"^\" are not counted. Details after \";\" are grouped under the text before it.",
		"input_placeholder":    "Enter a task in free description",
		"log_placeholder":      "Work logs will be output here",
		"rounding_unit":        "Rounding unit",
		"minutes_option":       "%d min",
		"plaintext_log":        "Plaintext",
		"markdown_summary":     "Markdown table",
		"html_summary":         "HTML table",
		"log_viewer":           "Log preview",
		"work_category":        "Work category",
		"work_detail":          "Work detail",
		"work_time_hour":       "Work time[hrs.]",
		"work_time_min":        "Work time[min.]",
		"work_time_actual":     "Actual work",
		"work_time_total":      "Total",
		"share":                "Share",
		"colon":                "： ",
		"mins":                 "min(s).",
		"delete_log":           "Delete log",
		"delete_log_confirm":   "Are you sure you want to delete the log?",
		"cancel":               "Cancel",
		"delete":               "Delete",
		"saved":                "Saved",
		"unsaved":              "Unsaved",
		"saved_lines":          "Saved (%d lines)",
		"no_problems":          "No problems found",
		"no_exports":           "No exports yet.",
		"copied":               "Copied %s to clipboard",
		"wrote":                "Wrote %s",
	},
	Japanese: {
		"app_name":             "Fast logbook",
		"app_description":      "開始時間付き作業メモ",
		"configure":            "設定",
		"view_formatted_log":   "ログを表示",
		"export_formatted_log": "ログを書き出す",
		"shortcut_items_title": "ショートカット項目",
		"shortcut_1":           "@仕事 +昇進試験;勉強",
		"shortcut_2":           "@私用 +家事;掃除",
		"shortcut_3":           "@仕事 +昇進試験;研究",
		"shortcut_4":           "@仕事 +昇進試験;レポート",
		"shortcut_5":           "@仕事 +昇進試験;プレゼンテーション",
		"shortcut_6":           "",
		"shortcut_7":           "",
		"shortcut_8":           "",
		"shortcut_9":           "",
		"shortcut_help":        "「^」で始まるタグはカウントされません。「;」の後に詳細を書くと「;」の前の文字列ごとに集計します。",
		"input_placeholder":    "自由記述でタスクを入力",
		"log_placeholder":      "作業記録がここに出力されます",
		"rounding_unit":        "時間丸め単位",
		"minutes_option":       "%d分",
		"plaintext_log":        "プレーンテキスト",
		"markdown_summary":     "Markdownの表",
		"html_summary":         "HTMLの表",
		"log_viewer":           "ログのプレビュー",
		"work_category":        "業務名",
		"work_detail":          "業務内容",
		"work_time_hour":       "作業時間[時]",
		"work_time_min":        "作業時間[分]",
		"work_time_actual":     "実働計",
		"work_time_total":      "総計",
		"share":                "割合",
		"colon":                "： ",
		"mins":                 "分",
		"delete_log":           "ログ削除",
		"delete_log_confirm":   "本当にログを削除しますか？",
		"cancel":               "キャンセル",
		"delete":               "削除",
		"saved":                "保存済み",
		"unsaved":              "未保存",
		"saved_lines":          "保存済み（%d行）",
		"no_problems":          "問題は見つかりませんでした",
		"no_exports":           "書き出し履歴はまだありません。",
		"copied":               "%sをクリップボードにコピーしました",
		"wrote":                "%sに書き出しました",
	},
}

// Detect maps a locale string such as "ja_JP.UTF-8" or "en-US" to a
// supported language. Anything unrecognised is DefaultLanguage.
func Detect(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if len(locale) >= 2 {
		if _, ok := dictionaries[locale[:2]]; ok {
			return locale[:2]
		}
	}
	return DefaultLanguage
}

// Translate looks key up in lang, then in DefaultLanguage. A key missing
// from both is returned unchanged.
func Translate(lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if v, ok := dictionaries[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{English, Japanese}
}
