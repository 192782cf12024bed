package dynamo

import (
	"errors"
	"testing"
)

func TestWinCondition_Description(t *testing.T) {
	tests := []struct {
		cond WinCondition
		want string
	}{
		{CircleUnderSpeed{Radius: 50, MaxSpeed: 2}, "Reach the green circle at under 2 px/s with engine off"},
		{CircleAnySpeed{Radius: 50}, "Reach the green circle with engine off"},
	}

	for _, tt := range tests {
		if got := tt.cond.Description(); got != tt.want {
			t.Errorf("Description() = %q, want %q", got, tt.want)
		}
	}
}

func TestWinSpec_RoundTrip(t *testing.T) {
	conds := []WinCondition{
		CircleUnderSpeed{X: 1, Y: 2, Radius: 3, MaxSpeed: 4},
		CircleAnySpeed{X: 5, Y: 6, Radius: 7},
	}

	for _, c := range conds {
		got, err := SpecOf(c).Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if got != c {
			t.Errorf("expected %+v, got %+v", c, got)
		}
	}
}

func TestWinSpec_UnknownKind(t *testing.T) {
	_, err := WinSpec{Kind: "square"}.Build()
	if !errors.Is(err, ErrInvalidWinCondition) {
		t.Errorf("expected ErrInvalidWinCondition, got %v", err)
	}
}
