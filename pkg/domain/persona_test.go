package domain

import "testing"

func TestPersonaFor(t *testing.T) {
	tests := []struct {
		name string
		task TaskType
	}{
		{"workout", TaskWorkout},
		{"pain analysis", TaskPainAnalysis},
		{"nutrition", TaskNutrition},
		{"mental coach", TaskMentalCoach},
		{"habits", TaskHabits},
		{"general", TaskGeneral},
		{"unknown task", TaskType("astrology")},
		{"empty task", TaskType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PersonaFor(tt.task); got == "" {
				t.Errorf("PersonaFor(%q) returned an empty persona", tt.task)
			}
		})
	}
}

func TestPersonaFor_UnknownFallsBackToGeneral(t *testing.T) {
	if PersonaFor("astrology") != PersonaFor(TaskGeneral) {
		t.Error("unknown task type should map to the general persona")
	}
}

func TestCatalogContainsDefault(t *testing.T) {
	if !InCatalog(DefaultImageModel) {
		t.Fatalf("default model %q is not in the catalog", DefaultImageModel)
	}
}

func TestCatalogKeysSorted(t *testing.T) {
	keys := CatalogKeys()
	if len(keys) != len(ImageModelCatalog) {
		t.Fatalf("got %d keys, want %d", len(keys), len(ImageModelCatalog))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

func TestStyledPrompt(t *testing.T) {
	styled := StyledPrompt("uma salada colorida", StyleNutrition)
	if styled == "uma salada colorida" {
		t.Error("styled prompt should extend the original prompt")
	}

	unknown := StyledPrompt("test", ImageStyle("vaporwave"))
	professional := StyledPrompt("test", StyleProfessional)
	if unknown != professional {
		t.Errorf("unknown style should use the professional modifier, got %q", unknown)
	}
}
