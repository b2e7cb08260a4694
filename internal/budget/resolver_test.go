package budget

import (
	"testing"

	"hburn/internal/model"
)

func TestResolve_ConfiguredWinsOverFallback(t *testing.T) {
	configured := map[string]float64{"Web App": 120, "API": 80}

	got := Resolve([]string{"Web App", "API", "Mystery"}, configured, 100)

	if len(got) != 3 {
		t.Fatalf("Resolve = %d budgets, want 3", len(got))
	}

	tests := []struct {
		project string
		hours   float64
		origin  model.BudgetOrigin
	}{
		{"Web App", 120, model.OriginConfigured},
		{"API", 80, model.OriginConfigured},
		{"Mystery", 100, model.OriginFallback},
	}
	for i, tt := range tests {
		b := got[i]
		if b.Project != tt.project {
			t.Errorf("budgets[%d].Project = %q, want %q (input order)", i, b.Project, tt.project)
		}
		if b.ContractedHours != tt.hours {
			t.Errorf("%s hours = %v, want %v", tt.project, b.ContractedHours, tt.hours)
		}
		if b.Origin != tt.origin {
			t.Errorf("%s origin = %v, want %v", tt.project, b.Origin, tt.origin)
		}
	}
}

func TestResolve_EmptyProjectList(t *testing.T) {
	got := Resolve(nil, map[string]float64{"X": 1}, 100)
	if len(got) != 0 {
		t.Fatalf("Resolve = %d budgets, want 0", len(got))
	}
}

func TestMergeEdits_OverridesAndMarksOrigin(t *testing.T) {
	resolved := Resolve([]string{"A", "B"}, map[string]float64{"A": 50}, 100)

	merged := MergeEdits(resolved, map[string]float64{"B": 75})

	if merged[0].ContractedHours != 50 || merged[0].Origin != model.OriginConfigured {
		t.Errorf("untouched budget changed: %+v", merged[0])
	}
	if merged[1].ContractedHours != 75 || merged[1].Origin != model.OriginEdited {
		t.Errorf("edited budget = %+v, want 75h edited", merged[1])
	}

	// The resolved slice itself is untouched.
	if resolved[1].ContractedHours != 100 {
		t.Errorf("MergeEdits mutated its input: %+v", resolved[1])
	}
}

func TestMergeEdits_SameValueKeepsOrigin(t *testing.T) {
	resolved := Resolve([]string{"A"}, map[string]float64{"A": 50}, 100)
	merged := MergeEdits(resolved, map[string]float64{"A": 50})
	if merged[0].Origin != model.OriginConfigured {
		t.Errorf("no-op edit should not change origin, got %v", merged[0].Origin)
	}
}

func TestMergeEdits_NegativeEditIgnored(t *testing.T) {
	resolved := Resolve([]string{"A"}, nil, 100)
	merged := MergeEdits(resolved, map[string]float64{"A": -5})
	if merged[0].ContractedHours != 100 || merged[0].Origin != model.OriginFallback {
		t.Errorf("negative edit applied: %+v", merged[0])
	}
}

func TestMergeEdits_UnknownProjectIgnored(t *testing.T) {
	resolved := Resolve([]string{"A"}, nil, 100)
	merged := MergeEdits(resolved, map[string]float64{"Ghost": 12})
	if len(merged) != 1 || merged[0].Project != "A" {
		t.Errorf("edit for an unresolved project grew the set: %+v", merged)
	}
}
