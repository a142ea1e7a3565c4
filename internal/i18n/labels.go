package i18n

// Labels is the set of strings a rendered report needs.
type Labels struct {
	AppName         string
	Viewer          string
	Category        string
	Detail          string
	Hours           string
	Minutes         string
	Actual          string
	Total           string
	Colon           string
	MinsUnit        string
	HTMLSummary     string
	Plaintext       string
	MarkdownSummary string
	Share           string
}

// LabelsFor returns the report labels for lang.
func LabelsFor(lang string) Labels {
	t := func(key string) string { return Translate(lang, key) }
	return Labels{
		AppName:         t("app_name"),
		Viewer:          t("log_viewer"),
		Category:        t("work_category"),
		Detail:          t("work_detail"),
		Hours:           t("work_time_hour"),
		Minutes:         t("work_time_min"),
		Actual:          t("work_time_actual"),
		Total:           t("work_time_total"),
		Colon:           t("colon"),
		MinsUnit:        t("mins"),
		HTMLSummary:     t("html_summary"),
		Plaintext:       t("plaintext_log"),
		MarkdownSummary: t("markdown_summary"),
		Share:           t("share"),
	}
}
