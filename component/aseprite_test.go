package component

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

const hashSheet = `{
  "frames": {
    "idle 10.aseprite": {"frame": {"x": 32, "y": 0, "w": 16, "h": 16}, "duration": 80},
    "idle 2.aseprite":  {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "duration": 120},
    "idle 1.aseprite":  {"frame": {"x": 0,  "y": 0, "w": 16, "h": 16}},
    "idle 11.aseprite": {"frame": {"x": 48, "y": 0, "w": 16, "h": 16}, "duration": 50}
  },
  "meta": {"app": "aseprite", "size": {"w": 48, "h": 16}}
}`

const arraySheet = `{
  "frames": [
    {"filename": "run_3", "frame": {"x": 32, "y": 0, "w": 16, "h": 16}, "duration": 90},
    {"filename": "run_1", "frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "duration": 90}
  ],
  "meta": {}
}`

func TestParseAsepriteOrdersByNumber(t *testing.T) {
	frames, err := ParseAseprite([]byte(hashSheet))
	if err != nil {
		t.Fatalf("ParseAseprite: %v", err)
	}
	wantNames := []string{"idle 1.aseprite", "idle 2.aseprite", "idle 10.aseprite", "idle 11.aseprite"}
	if len(frames) != len(wantNames) {
		t.Fatalf("got %d frames, want %d", len(frames), len(wantNames))
	}
	for i, n := range wantNames {
		if frames[i].Name != n {
			t.Errorf("frame %d = %q, want %q", i, frames[i].Name, n)
		}
	}
	if frames[0].Duration != DefaultFrameDuration {
		t.Errorf("missing duration = %v, want default", frames[0].Duration)
	}
	if frames[1].Duration != 120*time.Millisecond {
		t.Errorf("duration = %v, want 120ms", frames[1].Duration)
	}
}

func TestParseAsepriteArrayLayout(t *testing.T) {
	frames, err := ParseAseprite([]byte(arraySheet))
	if err != nil {
		t.Fatalf("ParseAseprite: %v", err)
	}
	if len(frames) != 2 || frames[0].Name != "run_1" || frames[1].Rect.Min.X != 32 {
		t.Fatalf("unexpected frames: %+v", frames)
	}
}

func TestParseAsepriteRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no meta", data: `{"frames": {}}`},
		{name: "no frames", data: `{"meta": {}}`},
		{name: "not json", data: `frames:`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAseprite([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if _, err := ParseAseprite([]byte(`{"frames": {}}`)); !errors.Is(err, ErrNotAseprite) {
		t.Fatalf("err = %v, want ErrNotAseprite", err)
	}
}

func TestClipFromAsepriteSkipsOutOfBounds(t *testing.T) {
	sheet := solid(48, 16, color.White)
	c, err := ClipFromAseprite("idle", sheet, []byte(hashSheet), true)
	if err != nil {
		t.Fatalf("ClipFromAseprite: %v", err)
	}
	// the x=48 frame lies outside a 48px sheet
	if len(c.Frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(c.Frames))
	}
	if c.Total() != (100+120+80)*time.Millisecond {
		t.Fatalf("Total() = %v", c.Total())
	}
	if b := c.Frames[2].Bounds(); b.Min.X != 32 || b.Dx() != 16 {
		t.Fatalf("third frame bounds = %v", b)
	}
}

func TestGridRects(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		want   []image.Rectangle
	}{
		{
			name:   "horizontal strip",
			bounds: image.Rect(0, 0, 96, 32),
			want:   []image.Rectangle{image.Rect(0, 0, 32, 32), image.Rect(32, 0, 64, 32), image.Rect(64, 0, 96, 32)},
		},
		{
			name:   "vertical strip",
			bounds: image.Rect(0, 0, 16, 40),
			want:   []image.Rectangle{image.Rect(0, 0, 16, 16), image.Rect(0, 16, 16, 32)},
		},
		{
			name:   "square",
			bounds: image.Rect(0, 0, 20, 20),
			want:   []image.Rectangle{image.Rect(0, 0, 20, 20)},
		},
		{
			name:   "empty",
			bounds: image.Rect(0, 0, 0, 10),
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridRects(tt.bounds)
			if len(got) != len(tt.want) {
				t.Fatalf("GridRects = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClipFromGridFallback(t *testing.T) {
	c := ClipFromGrid("strip", solid(64, 16, color.White), true)
	if len(c.Frames) != 4 || c.Total() != 4*DefaultFrameDuration || !c.Loop {
		t.Fatalf("unexpected grid clip: %d frames, total %v", len(c.Frames), c.Total())
	}

	empty := ClipFromGrid("empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), true)
	if len(empty.Frames) != 1 {
		t.Fatalf("empty sheet frames = %d, want whole-sheet frame", len(empty.Frames))
	}
}

func TestFixedClip(t *testing.T) {
	c, err := FixedClip("sword", solid(96, 16, color.White), 16, 6, 66*time.Millisecond, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Frames) != 6 || c.Loop || c.Total() != 396*time.Millisecond {
		t.Fatalf("unexpected clip: %d frames loop=%v total=%v", len(c.Frames), c.Loop, c.Total())
	}
}
