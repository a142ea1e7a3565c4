package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	cases := map[string]string{
		"ja_JP.UTF-8": Japanese,
		"ja":          Japanese,
		"JA-jp":       Japanese,
		"en_US.UTF-8": English,
		"fr_FR":       English,
		"C":           English,
		"":            English,
	}
	for in, want := range cases {
		assert.Equal(t, want, Detect(in), "locale=%q", in)
	}
}

func TestTranslate_FallsBackToEnglishThenKey(t *testing.T) {
	assert.Equal(t, "総計", Translate(Japanese, "work_time_total"))
	assert.Equal(t, "Total", Translate("de", "work_time_total"))
	assert.Equal(t, "no_such_key", Translate(Japanese, "no_such_key"))
}

func TestDictionariesShareKeys(t *testing.T) {
	en := dictionaries[English]
	for _, lang := range Languages() {
		dict := dictionaries[lang]
		assert.Len(t, dict, len(en), "lang=%s", lang)
		for k := range en {
			_, ok := dict[k]
			assert.True(t, ok, "lang=%s missing %s", lang, k)
		}
	}
}

func TestLabelsFor(t *testing.T) {
	l := LabelsFor(English)
	assert.Equal(t, "Work category", l.Category)
	assert.Equal(t, "min(s).", l.MinsUnit)
	assert.Equal(t, "： ", l.Colon)

	ja := LabelsFor(Japanese)
	assert.Equal(t, "実働計", ja.Actual)
	assert.Equal(t, "： ", ja.Colon)
}
