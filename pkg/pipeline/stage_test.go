package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestStageFunc(t *testing.T) {
	var stage Stage[LayoutInput, int] = StageFunc[LayoutInput, int](
		func(ctx context.Context, input LayoutInput) (int, error) {
			if input.Label == "" {
				return 0, errors.New("empty label")
			}
			return len(input.Label), nil
		})

	got, err := stage.Execute(context.Background(), LayoutInput{Label: "300 x 200"})
	if err != nil || got != 9 {
		t.Errorf("Execute() = %d, %v, want 9, nil", got, err)
	}
	if _, err := stage.Execute(context.Background(), LayoutInput{}); err == nil {
		t.Error("expected error for empty label")
	}
}
