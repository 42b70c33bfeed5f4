package assets

import (
	"testing"

	"github.com/automoto/tilerun/shared/stage"
)

func TestBundledStages(t *testing.T) {
	stages, names := MustLoadStages()
	if len(names) < 2 || names[0] != "level1" {
		t.Fatalf("names = %v, want level1 first", names)
	}

	for _, name := range names {
		data := stages[name]
		players := 0
		for _, m := range data.Spawns {
			if m.Kind == 1 {
				players++
			}
		}
		if players != 1 {
			t.Errorf("%s: %d player markers, want 1", name, players)
		}

		st := stage.New(data, stage.DefaultConfig)
		if st.PixelHeight() < 144 {
			t.Errorf("%s: stage shorter than the screen", name)
		}
	}
}

func TestLevelOneTiles(t *testing.T) {
	stages, _ := MustLoadStages()
	st := stage.New(stages["level1"], stage.DefaultConfig)

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 7, 15},
		{14, 7, stage.CodeNone}, // pit
		{6, 4, stage.CodeBump},
		{8, 4, stage.CodeBreak},
		{25, 7, stage.CodeHurt},
		{30, 4, 1},
	}
	for _, tt := range tests {
		if got := st.SolidCode(tt.x, tt.y); got != tt.want {
			t.Errorf("SolidCode(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
