package language

import "testing"

func TestFluencyRankOrdering(t *testing.T) {
	ordered := []Fluency{
		FluencySayHello,
		FluencyBeginner,
		FluencyIntermediate,
		FluencyAdvanced,
		FluencyFluent,
		FluencyNative,
	}

	for i := 1; i < len(ordered); i++ {
		lower, higher := ordered[i-1], ordered[i]
		if lower.Rank() >= higher.Rank() {
			t.Fatalf("expected %s < %s, got ranks %d and %d", lower, higher, lower.Rank(), higher.Rank())
		}
	}
}

func TestFluencyUnknownValues(t *testing.T) {
	unknown := Fluency("telepathic")
	if unknown.Valid() {
		t.Fatal("unexpected valid result for unknown fluency")
	}
	if unknown.Rank() != 0 {
		t.Fatalf("unknown fluency must rank 0, got %d", unknown.Rank())
	}
	if !FluencyNative.Valid() {
		t.Fatal("native must be a valid fluency")
	}
}
