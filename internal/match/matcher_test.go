package match

import (
	"math"
	"testing"

	"github.com/666fy666/AutoOffer/internal/template"
)

func TestMatchContainmentBypass(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "电话", Value: "13800138000"},
	}

	// Raw edit-distance similarity between 电话 and the full text falls far
	// below the threshold; containment must accept the field anyway.
	got := m.Match("电话号码13800138000", fields)

	if len(got) != 1 {
		t.Fatalf("Match returned %d candidates, want 1", len(got))
	}

	c := got[0]
	if c.Label != "电话" || c.Value != "13800138000" {
		t.Errorf("Match returned (%q, %q), want (电话, 13800138000)", c.Label, c.Value)
	}

	if c.Kind != MatchContained {
		t.Errorf("Kind = %v, want %v", c.Kind, MatchContained)
	}

	// Score rewards tighter containment: label runes / text runes.
	want := 2.0 / 15.0
	if math.Abs(c.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", c.Score, want)
	}
}

func TestMatchTextInLabel(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "毕业院校", Value: "某某大学"},
	}

	got := m.Match("毕业", fields)

	if len(got) != 1 {
		t.Fatalf("Match returned %d candidates, want 1", len(got))
	}

	if got[0].Kind != MatchContained {
		t.Errorf("Kind = %v, want %v", got[0].Kind, MatchContained)
	}

	// Reverse direction: text runes / label runes.
	if math.Abs(got[0].Score-0.5) > 1e-9 {
		t.Errorf("Score = %v, want 0.5", got[0].Score)
	}
}

func TestMatchFallbackSimilarity(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "毕业院校", Value: "某某大学"},
	}

	// One substituted character, no containment: similarity 0.75 passes.
	got := m.Match("毕业学校", fields)

	if len(got) != 1 {
		t.Fatalf("Match returned %d candidates, want 1", len(got))
	}

	if got[0].Kind != MatchScored {
		t.Errorf("Kind = %v, want %v", got[0].Kind, MatchScored)
	}

	if math.Abs(got[0].Score-0.75) > 1e-9 {
		t.Errorf("Score = %v, want 0.75", got[0].Score)
	}
}

func TestMatchThresholdGating(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "姓名", Value: "张三"},
	}

	// Neither containment holds and similarity(性别, 姓名) is 0.
	got := m.Match("性别", fields)

	if len(got) != 0 {
		t.Errorf("Match returned %d candidates, want 0", len(got))
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "电话", Value: "13800138000"},
	}

	if got := m.Match("", fields); len(got) != 0 {
		t.Errorf("Match with empty text returned %d candidates, want 0", len(got))
	}

	if got := m.Match("电话", nil); len(got) != 0 {
		t.Errorf("Match with no fields returned %d candidates, want 0", len(got))
	}

	// Text that normalizes to nothing matches nothing.
	if got := m.Match(" \n\t：", fields); len(got) != 0 {
		t.Errorf("Match with whitespace text returned %d candidates, want 0", len(got))
	}
}

func TestMatchSkipsEmptyValues(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "电话", Value: ""},
		{Label: "手机", Value: "13900139000"},
	}

	got := m.Match("电话手机", fields)

	if len(got) != 1 {
		t.Fatalf("Match returned %d candidates, want 1", len(got))
	}

	if got[0].Label != "手机" {
		t.Errorf("Label = %q, want 手机", got[0].Label)
	}
}

func TestMatchStableTieOrder(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	// Both labels are contained with identical relative length, so both
	// score 0.5; their relative order must follow the input order.
	fields := []template.Field{
		{Label: "电话", Value: "a"},
		{Label: "手机", Value: "b"},
	}

	got := m.Match("电话手机", fields)

	if len(got) != 2 {
		t.Fatalf("Match returned %d candidates, want 2", len(got))
	}

	if got[0].Label != "电话" || got[1].Label != "手机" {
		t.Errorf("tie order = [%q, %q], want [电话, 手机]", got[0].Label, got[1].Label)
	}

	// Flipping the input order must flip the output order.
	fields[0], fields[1] = fields[1], fields[0]

	got = m.Match("电话手机", fields)

	if got[0].Label != "手机" || got[1].Label != "电话" {
		t.Errorf("tie order = [%q, %q], want [手机, 电话]", got[0].Label, got[1].Label)
	}
}

func TestMatchRanking(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	fields := []template.Field{
		{Label: "电话号码", Value: "fixed"},
		{Label: "电话", Value: "mobile"},
	}

	got := m.Match("电话号码", fields)

	if len(got) != 2 {
		t.Fatalf("Match returned %d candidates, want 2", len(got))
	}

	// Exact containment (score 1.0) outranks partial containment (0.5).
	if got[0].Label != "电话号码" || got[1].Label != "电话" {
		t.Errorf("ranking = [%q, %q], want [电话号码, 电话]", got[0].Label, got[1].Label)
	}

	for _, c := range got {
		if c.Score < 0 || c.Score > 1 {
			t.Errorf("Score for %q = %v, out of [0,1]", c.Label, c.Score)
		}
	}
}

func TestCandidateListHelpers(t *testing.T) {
	var empty CandidateList

	if empty.Best() != nil {
		t.Error("Best of empty list should be nil")
	}

	list := CandidateList{
		{Label: "a", Score: 0.9},
		{Label: "b", Score: 0.5},
		{Label: "c", Score: 0.4},
	}

	if best := list.Best(); best == nil || best.Label != "a" {
		t.Errorf("Best = %v, want label a", best)
	}

	if top := list.Top(2); len(top) != 2 || top[1].Label != "b" {
		t.Errorf("Top(2) = %v, want [a b]", top)
	}

	if top := list.Top(10); len(top) != 3 {
		t.Errorf("Top(10) returned %d candidates, want 3", len(top))
	}
}

func TestCandidatePercent(t *testing.T) {
	tests := []struct {
		score    float64
		expected int
	}{
		{1.0, 100},
		{0.75, 75},
		{2.0 / 3.0, 67},
		{0.0, 0},
	}

	for _, tt := range tests {
		c := Candidate{Score: tt.score}
		if got := c.Percent(); got != tt.expected {
			t.Errorf("Percent of %v = %d, want %d", tt.score, got, tt.expected)
		}
	}
}

func TestMatchKindString(t *testing.T) {
	if MatchContained.String() != "MatchContained" {
		t.Errorf("MatchContained.String() = %q", MatchContained.String())
	}

	if MatchScored.String() != "MatchScored" {
		t.Errorf("MatchScored.String() = %q", MatchScored.String())
	}
}
