package i18n

import (
	"testing"

	"go.uber.org/zap"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{name: "english", locale: "en", key: "results_best", want: "Best times"},
		{name: "french", locale: "fr", key: "results_best", want: "Meilleurs créneaux"},
		{name: "template data", locale: "en", key: "results_title", data: map[string]any{"Name": "Sync"}, want: "Results for Sync"},
		{name: "falls back to default", locale: "zh-TW", key: "modal_create_title", want: "New MeetMatch event"},
		{name: "unknown locale", locale: "de", key: "results_best", want: "Best times"},
		{name: "unknown key", locale: "en", key: "nope", want: "nope"},
		{name: "empty key", locale: "en", key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslator_Weekdays(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	if got := tr.Weekdays("zh-TW"); got[1].Label != "週一" || got[1].Short != "一" {
		t.Errorf("zh-TW monday = %+v", got[1])
	}
	if got := tr.Weekdays("fr"); got[0].Label != "Dimanche" {
		t.Errorf("fr sunday = %+v", got[0])
	}
	if got := tr.Weekdays("xx"); got[6].Label != "Saturday" || got[6].Short != "Sat" {
		t.Errorf("fallback saturday = %+v", got[6])
	}
}

func TestTranslator_Locale(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	tests := []struct {
		prefs []string
		want  string
	}{
		{prefs: nil, want: "en"},
		{prefs: []string{"", "fr-FR,fr;q=0.9,en;q=0.8"}, want: "fr"},
		{prefs: []string{"zh-TW"}, want: "zh-TW"},
		{prefs: []string{"fr"}, want: "fr"},
		{prefs: []string{"ja"}, want: "en"},
	}
	for _, tt := range tests {
		if got := tr.Locale(tt.prefs...); got != tt.want {
			t.Errorf("Locale(%v) = %q, want %q", tt.prefs, got, tt.want)
		}
	}
}
