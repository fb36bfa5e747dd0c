package render

import (
	"testing"

	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/content/components/model"
)

func rec(typ, slug, content string) model.ComponentModel {
	m := model.ComponentModel{
		ComponentType:    typ,
		ComponentPage:    "home",
		ComponentContent: datatypes.JSON([]byte(content)),
	}
	if slug != "" {
		m.ComponentSlug = &slug
	}
	return m
}

func TestRenderUnknownTypeIsNoOp(t *testing.T) {
	n := Render(rec("unknown-xyz", "", `{"title":{"en":"Hi","ta":""}}`), "en")
	if n != nil {
		t.Fatalf("unknown type must render nothing, got %+v", n)
	}
}

func TestRenderMalformedContentIsNoOp(t *testing.T) {
	if n := Render(rec("hero", "", `not-json`), "en"); n != nil {
		t.Fatalf("malformed payload must render nothing, got %+v", n)
	}
	if n := Render(rec("hero", "", `[1,2]`), "en"); n != nil {
		t.Fatalf("non-object payload must render nothing, got %+v", n)
	}
}

func TestRenderResolvesBilingualLeaves(t *testing.T) {
	n := Render(rec("hero", "", `{
		"title": {"en": "Welcome", "ta": "வரவேற்கிறோம்"},
		"subtitle": {"en": "Hi", "ta": ""},
		"items": [{"label": {"en": "One", "ta": "ஒன்று"}}],
		"count": 3
	}`), "ta")
	if n == nil {
		t.Fatal("expected a node")
	}
	if got := n.Props["title"]; got != "வரவேற்கிறோம்" {
		t.Fatalf("title = %v", got)
	}
	// empty ta falls back to en
	if got := n.Props["subtitle"]; got != "Hi" {
		t.Fatalf("subtitle = %v, want fallback to en", got)
	}
	items, ok := n.Props["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", n.Props["items"])
	}
	if got := items[0].(map[string]any)["label"]; got != "ஒன்று" {
		t.Fatalf("nested label = %v", got)
	}
	if got := n.Props["count"]; got != float64(3) {
		t.Fatalf("non-bilingual value mangled: %v", got)
	}
}

func TestRenderTextSlugVariants(t *testing.T) {
	cases := []struct {
		slug    string
		variant string
	}{
		{"mission", "mission"},
		{"vision", "vision"},
		{"history", "generic"},
		{"", "generic"},
	}
	for _, tc := range cases {
		n := Render(rec("text", tc.slug, `{"body":{"en":"x","ta":"y"}}`), "en")
		if n == nil {
			t.Fatalf("slug %q: expected node", tc.slug)
		}
		if n.Variant != tc.variant {
			t.Fatalf("slug %q: variant = %q, want %q", tc.slug, n.Variant, tc.variant)
		}
	}
}

func TestRenderPageSkipsUnknownKeepsOrder(t *testing.T) {
	recs := []model.ComponentModel{
		rec("hero", "", `{"title":{"en":"a"}}`),
		rec("holo-deck", "", `{}`),
		rec("faq", "", `{"items":[]}`),
	}
	recs[0].ComponentOrder = 1
	recs[2].ComponentOrder = 5

	nodes := RenderPage(recs, "en")
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Type != "hero" || nodes[1].Type != "faq" {
		t.Fatalf("order lost: %v, %v", nodes[0].Type, nodes[1].Type)
	}
	if nodes[1].Order != 5 {
		t.Fatalf("order field lost: %d", nodes[1].Order)
	}
}
