package helper

import "testing"

func TestBilingualResolve(t *testing.T) {
	cases := []struct {
		name string
		b    Bilingual
		lang string
		want string
	}{
		{"tamil present", Bilingual{En: "Hello", Ta: "வணக்கம்"}, "ta", "வணக்கம்"},
		{"tamil empty falls back to english", Bilingual{En: "Hi", Ta: ""}, "ta", "Hi"},
		{"english requested", Bilingual{En: "Hi", Ta: "வணக்கம்"}, "en", "Hi"},
		{"unknown language falls back to english", Bilingual{En: "Hi", Ta: "வணக்கம்"}, "fr", "Hi"},
		{"both empty", Bilingual{}, "ta", ""},
		{"english empty tamil requested", Bilingual{Ta: "வணக்கம்"}, "ta", "வணக்கம்"},
		{"english empty english requested", Bilingual{Ta: "வணக்கம்"}, "en", ""},
		{"lang case insensitive", Bilingual{En: "Hi", Ta: "வணக்கம்"}, "TA", "வணக்கம்"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Resolve(tc.lang); got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.lang, got, tc.want)
			}
		})
	}
}

func TestResolveField(t *testing.T) {
	field := map[string]any{"en": "Mission", "ta": "நோக்கம்"}
	if got := ResolveField(field, "ta"); got != "நோக்கம்" {
		t.Fatalf("ResolveField ta = %q", got)
	}
	if got := ResolveField(field, "en"); got != "Mission" {
		t.Fatalf("ResolveField en = %q", got)
	}
	if got := ResolveField(nil, "ta"); got != "" {
		t.Fatalf("ResolveField nil = %q, want empty", got)
	}
	if got := ResolveField(map[string]any{"en": 3}, "en"); got != "" {
		t.Fatalf("ResolveField non-string = %q, want empty", got)
	}
}
