// Package render maps CMS component types onto typed view nodes. The
// dispatch table is the single place that knows which types exist; unknown
// types render nothing so new CMS content never breaks older deployments.
package render

import (
	"encoding/json"
	"strings"

	"tamilmandram_backend/internals/features/content/components/model"
	helper "tamilmandram_backend/internals/helpers"
)

// Node is one rendered component, language already resolved.
type Node struct {
	Type    string         `json:"type"`
	Variant string         `json:"variant,omitempty"`
	Slug    string         `json:"slug,omitempty"`
	Order   int            `json:"order"`
	Props   map[string]any `json:"props"`
}

type renderFunc func(rec model.ComponentModel, lang string) *Node

var renderers = map[string]renderFunc{
	"hero":         renderGeneric,
	"banner":       renderGeneric,
	"navbar":       renderGeneric,
	"footer":       renderGeneric,
	"cta":          renderGeneric,
	"countdown":    renderGeneric,
	"stats":        renderGeneric,
	"faq":          renderGeneric,
	"features":     renderGeneric,
	"testimonials": renderGeneric,
	"timeline":     renderGeneric,
	"gallery":      renderGeneric,
	"team":         renderGeneric,
	"text":         renderText,
}

// Render dispatches on the record's type. Unrecognized types and malformed
// payloads return nil - a deliberate safe default, never an error.
func Render(rec model.ComponentModel, lang string) *Node {
	fn, ok := renderers[rec.ComponentType]
	if !ok {
		return nil
	}
	return fn(rec, lang)
}

// RenderPage renders an ordered record list, dropping nil nodes.
func RenderPage(recs []model.ComponentModel, lang string) []Node {
	nodes := make([]Node, 0, len(recs))
	for _, rec := range recs {
		if n := Render(rec, lang); n != nil {
			nodes = append(nodes, *n)
		}
	}
	return nodes
}

func renderGeneric(rec model.ComponentModel, lang string) *Node {
	props, ok := decodeProps(rec, lang)
	if !ok {
		return nil
	}
	n := &Node{
		Type:  rec.ComponentType,
		Order: rec.ComponentOrder,
		Props: props,
	}
	if rec.ComponentSlug != nil {
		n.Slug = *rec.ComponentSlug
	}
	return n
}

// renderText disambiguates on slug: "mission" and "vision" are named
// variants with their own presentation, anything else renders generically.
func renderText(rec model.ComponentModel, lang string) *Node {
	n := renderGeneric(rec, lang)
	if n == nil {
		return nil
	}
	switch strings.ToLower(n.Slug) {
	case "mission":
		n.Variant = "mission"
	case "vision":
		n.Variant = "vision"
	default:
		n.Variant = "generic"
	}
	return n
}

func decodeProps(rec model.ComponentModel, lang string) (map[string]any, bool) {
	var raw map[string]any
	if err := json.Unmarshal(rec.ComponentContent, &raw); err != nil {
		return nil, false
	}
	resolved, _ := resolveValue(raw, lang).(map[string]any)
	if resolved == nil {
		return nil, false
	}
	return resolved, true
}

// resolveValue walks the payload and collapses every bilingual leaf
// ({en,ta} object) into the single display string for lang.
func resolveValue(v any, lang string) any {
	switch t := v.(type) {
	case map[string]any:
		if isBilingualLeaf(t) {
			return helper.ResolveField(t, lang)
		}
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = resolveValue(inner, lang)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = resolveValue(inner, lang)
		}
		return out
	default:
		return v
	}
}

func isBilingualLeaf(m map[string]any) bool {
	if len(m) == 0 || len(m) > 2 {
		return false
	}
	for k, v := range m {
		if k != helper.LangEnglish && k != helper.LangTamil {
			return false
		}
		if _, ok := v.(string); !ok {
			return false
		}
	}
	_, hasEn := m[helper.LangEnglish]
	_, hasTa := m[helper.LangTamil]
	return hasEn || hasTa
}
