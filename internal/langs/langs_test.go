package langs

import "testing"

func TestNeedsTranscription(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"auto source never transcribes", "auto", "ja", false},
		{"same latin scripts", "en", "es", false},
		{"same cyrillic scripts", "ru", "uk", false},
		{"latin to japanese", "en", "ja", true},
		{"latin to chinese", "en", "zh", true},
		{"latin to korean", "en", "ko", true},
		{"latin to arabic", "en", "ar", true},
		{"latin to cyrillic", "en", "ru", true},
		{"japanese to latin", "ja", "en", true},
		{"unknown source", "xx", "ja", false},
		{"unknown target", "en", "xx", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsTranscription(tt.from, tt.to); got != tt.want {
				t.Errorf("NeedsTranscription(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if Name("ja") != "Japanese" {
		t.Errorf("Name(ja) = %q", Name("ja"))
	}
	// Unknown codes fall back to the code itself.
	if Name("tlh") != "tlh" {
		t.Errorf("Name(tlh) = %q", Name("tlh"))
	}
}

func TestCodesCoverTable(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 {
		t.Fatal("no language codes")
	}
	for _, c := range codes {
		if _, ok := ScriptOf(c); !ok {
			t.Errorf("code %q missing script", c)
		}
	}
}
