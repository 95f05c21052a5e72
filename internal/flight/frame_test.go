package flight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
)

func TestFrameIntro(t *testing.T) {
	g := newTestGame(config.DefaultGameConfig(), 1)
	f := g.Frame()

	if f.Width != 1600 || f.Height != 900 {
		t.Errorf("frame size = %dx%d, expected 1600x900", f.Width, f.Height)
	}
	if f.Clear != ClearColor {
		t.Errorf("Clear = %v, expected %v", f.Clear, ClearColor)
	}
	if len(f.Commands) != 1 {
		t.Fatalf("intro should draw only its message, got %d commands", len(f.Commands))
	}

	cmd := f.Commands[0]
	if cmd.Image != ImageText || cmd.Anchor != AnchorCenter {
		t.Errorf("intro command = %+v", cmd)
	}
	if !strings.Contains(cmd.Text, "Enter") || !strings.Contains(cmd.Text, "Esc") {
		t.Errorf("intro text %q should explain the keys", cmd.Text)
	}
}

func TestFramePlaying(t *testing.T) {
	g := newTestGame(config.DefaultGameConfig(), 1)
	g.Step(input(core.ActionConfirm))
	f := g.Frame()

	// Sun, nine pipe segments, score, floor, character
	if len(f.Commands) != 13 {
		t.Fatalf("len(Commands) = %d, expected 13", len(f.Commands))
	}
	if f.Commands[0].Image != ImageSun {
		t.Errorf("first command = %v, expected the sun", f.Commands[0].Image)
	}

	pipes := 0
	for _, cmd := range f.Commands {
		if cmd.Image == ImagePipe {
			pipes++
			if cmd.X != 1600 {
				t.Errorf("pipe segment X = %d, expected 1600", cmd.X)
			}
		}
	}
	if pipes != 9 {
		t.Errorf("pipe segments = %d, expected 9", pipes)
	}

	hud := f.Commands[10]
	if hud.Image != ImageText || hud.Text != "Points: 0" || hud.Anchor != AnchorTopRight {
		t.Errorf("score command = %+v", hud)
	}
	if hud.X != 1580 || hud.Y != 10 {
		t.Errorf("score at (%d, %d), expected (1580, 10)", hud.X, hud.Y)
	}

	floor := f.Commands[11]
	if floor.Image != ImageFloor || floor.Y != 800 {
		t.Errorf("floor command = %+v", floor)
	}

	egg := f.Commands[12]
	if egg.Image != ImageCharacter || egg.X != 400 || egg.Y != 420 {
		t.Errorf("character command = %+v", egg)
	}
	if egg.Angle != -45 {
		t.Errorf("character angle = %v, expected -45", egg.Angle)
	}
	if egg.Clip == nil || *egg.Clip != core.NewRect(0, 0, 60, 60) {
		t.Errorf("character clip = %v, expected the first frame", egg.Clip)
	}
}

func TestFrameGameOver(t *testing.T) {
	g := newTestGame(config.DefaultGameConfig(), 1)
	g.Step(input(core.ActionConfirm))
	for i := 0; i < 200 && g.Snapshot().Phase == PhasePlaying; i++ {
		g.Step(input())
	}

	f := g.Frame()
	if f.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected game over", f.Phase)
	}

	n := len(f.Commands)
	overlay, text := f.Commands[n-2], f.Commands[n-1]
	if overlay.Image != ImageOverlay || overlay.Alpha != 0xA0 {
		t.Errorf("overlay command = %+v", overlay)
	}
	if text.Image != ImageText || !strings.Contains(text.Text, "0 points") {
		t.Errorf("game over text = %q", text.Text)
	}
	if f.Commands[n-3].Image != ImageCharacter {
		t.Error("overlay should be drawn over the scene")
	}
}

func TestSpriteClip(t *testing.T) {
	tests := []struct {
		frame int
		want  core.Rect
	}{
		{0, core.NewRect(0, 0, 60, 60)},
		{1, core.NewRect(60, 0, 60, 60)},
		{2, core.NewRect(0, 60, 60, 60)},
		{3, core.NewRect(60, 60, 60, 60)},
	}
	for _, tt := range tests {
		if got := SpriteClip(tt.frame, 60, 60); got != tt.want {
			t.Errorf("SpriteClip(%d) = %+v, expected %+v", tt.frame, got, tt.want)
		}
	}
}

func TestRGBHex(t *testing.T) {
	if got := ClearColor.Hex(); got != "#ffaec9" {
		t.Errorf("ClearColor.Hex() = %q", got)
	}
	if got := TextColor.Hex(); got != "#000000" {
		t.Errorf("TextColor.Hex() = %q", got)
	}
}
