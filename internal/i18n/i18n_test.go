package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestT(t *testing.T) {
	tests := []struct {
		lang string
		id   string
		want string
	}{
		{"en", "tab.tape", "Tape"},
		{"de", "tab.tape", "Protokoll"},
		{"fr", "tab.tape", "Tape"},
		{"en", "no.such.message", "no.such.message"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.id, func(t *testing.T) {
			Init(tt.lang)
			if got := T(tt.id); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestTf(t *testing.T) {
	Init("en")
	got := Tf("tape.exported", map[string]any{"Count": 3, "Path": "/tmp/tape.csv"})
	if got != "Exported 3 calculations to /tmp/tape.csv" {
		t.Errorf("Tf() = %q", got)
	}
}

func TestTag(t *testing.T) {
	if got := Tag("de-CH"); got != language.MustParse("de-CH") {
		t.Errorf("Tag(de-CH) = %v", got)
	}
	if got := Tag("!!"); got != language.English {
		t.Errorf("Tag(!!) = %v, want en", got)
	}
}
