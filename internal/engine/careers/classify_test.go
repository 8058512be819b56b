package careers

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Run("software engineering skills", func(t *testing.T) {
		got := Classify([]string{"JavaScript", "React", "Node"}, "developer")
		if got.SelectedDomain != "Software Engineering" {
			t.Errorf("domain = %q", got.SelectedDomain)
		}
		if got.ConfidenceScore != 100 {
			t.Errorf("confidence = %d, want 100", got.ConfidenceScore)
		}
		if len(got.RecommendedJobTitles) != 5 {
			t.Errorf("titles = %v", got.RecommendedJobTitles)
		}
	})

	t.Run("design skills", func(t *testing.T) {
		got := Classify([]string{"Figma", "wireframe", "prototyping"}, "")
		if got.SelectedDomain != "Design & UI/UX" {
			t.Errorf("domain = %q", got.SelectedDomain)
		}
	})

	t.Run("sales skills", func(t *testing.T) {
		got := Classify([]string{"CRM", "lead generation", "negotiation"}, "")
		if got.SelectedDomain != "Sales" {
			t.Errorf("domain = %q", got.SelectedDomain)
		}
	})

	t.Run("empty skills default", func(t *testing.T) {
		got := Classify(nil, "")
		if got.SelectedDomain != "Software Engineering" {
			t.Errorf("domain = %q", got.SelectedDomain)
		}
		if got.ConfidenceScore != 0 {
			t.Errorf("confidence = %d, want 0", got.ConfidenceScore)
		}
	})

	t.Run("unmatched skills default with zero confidence", func(t *testing.T) {
		got := Classify([]string{"welding", "carpentry"}, "")
		if got.SelectedDomain != "Software Engineering" {
			t.Errorf("domain = %q", got.SelectedDomain)
		}
		if got.ConfidenceScore != 0 {
			t.Errorf("confidence = %d, want 0", got.ConfidenceScore)
		}
	})

	t.Run("tie keeps earlier domain", func(t *testing.T) {
		// "python" appears in both Software Engineering and Data Science.
		got := Classify([]string{"python"}, "")
		if got.SelectedDomain != "Software Engineering" {
			t.Errorf("domain = %q, want earlier domain on tie", got.SelectedDomain)
		}
	})

	t.Run("confidence clamped to 100", func(t *testing.T) {
		got := Classify([]string{"python"}, "")
		if got.ConfidenceScore > 100 {
			t.Errorf("confidence = %d", got.ConfidenceScore)
		}
	})

	t.Run("reason lists matched skills", func(t *testing.T) {
		got := Classify([]string{"Python", "SQL quirks"}, "")
		if !strings.HasPrefix(got.SelectionReason, "Matched ") {
			t.Errorf("reason = %q", got.SelectionReason)
		}
	})

	t.Run("reason keeps caller casing", func(t *testing.T) {
		got := Classify([]string{"Python", "React"}, "")
		if !strings.Contains(got.SelectionReason, "Python") || !strings.Contains(got.SelectionReason, "React") {
			t.Errorf("reason = %q, want original casing", got.SelectionReason)
		}
		if strings.Contains(got.SelectionReason, "python") {
			t.Errorf("reason = %q, lowercased skill leaked", got.SelectionReason)
		}
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		upper := Classify([]string{"PYTHON", "REACT"}, "")
		lower := Classify([]string{"python", "react"}, "")
		if upper.SelectedDomain != lower.SelectedDomain || upper.ConfidenceScore != lower.ConfidenceScore {
			t.Errorf("case sensitivity leak: %+v vs %+v", upper, lower)
		}
	})
}
