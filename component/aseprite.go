package component

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// ErrNotAseprite is returned for JSON that lacks the frames/meta sections.
var ErrNotAseprite = errors.New("aseprite: missing frames or meta")

// Sheet is a sprite sheet that can be cut into sub images.
type Sheet interface {
	Bounds() image.Rectangle
	SubImage(r image.Rectangle) image.Image
}

// AsepriteFrame is one entry of the exported frames table.
type AsepriteFrame struct {
	Name     string
	Rect     image.Rectangle
	Duration time.Duration
}

type asepriteRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type asepriteEntry struct {
	Filename string       `json:"filename"`
	Frame    asepriteRect `json:"frame"`
	Duration *int         `json:"duration"`
}

type asepriteFile struct {
	Frames json.RawMessage `json:"frames"`
	Meta   json.RawMessage `json:"meta"`
}

var frameNumber = regexp.MustCompile(`\d+`)

// frameOrder extracts the first run of digits in a frame name, 0 if none.
func frameOrder(name string) int {
	m := frameNumber.FindString(name)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParseAseprite decodes an Aseprite sheet export. Both the hash and the array
// layout of "frames" are accepted. Frames come back ordered by the number in
// their name.
func ParseAseprite(data []byte) ([]AsepriteFrame, error) {
	var f asepriteFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("aseprite: %w", err)
	}
	if len(f.Frames) == 0 || len(f.Meta) == 0 || string(f.Frames) == "null" || string(f.Meta) == "null" {
		return nil, ErrNotAseprite
	}

	var entries []asepriteEntry
	var byName map[string]asepriteEntry
	if err := json.Unmarshal(f.Frames, &byName); err == nil {
		for name, e := range byName {
			e.Filename = name
			entries = append(entries, e)
		}
	} else if err := json.Unmarshal(f.Frames, &entries); err != nil {
		return nil, fmt.Errorf("aseprite: frames: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := frameOrder(entries[i].Filename), frameOrder(entries[j].Filename)
		if oi != oj {
			return oi < oj
		}
		return entries[i].Filename < entries[j].Filename
	})

	out := make([]AsepriteFrame, 0, len(entries))
	for _, e := range entries {
		d := DefaultFrameDuration
		if e.Duration != nil {
			d = time.Duration(*e.Duration) * time.Millisecond
		}
		out = append(out, AsepriteFrame{
			Name:     e.Filename,
			Rect:     image.Rect(e.Frame.X, e.Frame.Y, e.Frame.X+e.Frame.W, e.Frame.Y+e.Frame.H),
			Duration: d,
		})
	}
	return out, nil
}

// ClipFromAseprite cuts sheet using the exported metadata. Frames that fall
// outside the sheet are skipped; an error is returned when none remain.
func ClipFromAseprite(name string, sheet Sheet, meta []byte, loop bool) (*Clip, error) {
	specs, err := ParseAseprite(meta)
	if err != nil {
		return nil, err
	}
	bounds := sheet.Bounds()
	var frames []image.Image
	var durations []time.Duration
	for _, s := range specs {
		r := s.Rect.Add(bounds.Min)
		if s.Rect.Empty() || !r.In(bounds) {
			continue
		}
		frames = append(frames, sheet.SubImage(r))
		durations = append(durations, s.Duration)
	}
	return NewClip(name, frames, durations, loop)
}

// GridRects slices a strip of square frames: horizontally when the sheet is
// wider than tall, vertically otherwise.
func GridRects(bounds image.Rectangle) []image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	var rects []image.Rectangle
	if w > h {
		for i := 0; i < w/h; i++ {
			rects = append(rects, image.Rect(i*h, 0, (i+1)*h, h).Add(bounds.Min))
		}
		return rects
	}
	for i := 0; i < h/w; i++ {
		rects = append(rects, image.Rect(0, i*w, w, (i+1)*w).Add(bounds.Min))
	}
	return rects
}

// ClipFromGrid is the metadata-free fallback: square frames at the default
// duration, or the whole sheet as a single frame.
func ClipFromGrid(name string, sheet Sheet, loop bool) *Clip {
	var frames []image.Image
	for _, r := range GridRects(sheet.Bounds()) {
		frames = append(frames, sheet.SubImage(r))
	}
	if len(frames) == 0 {
		frames = []image.Image{sheet.SubImage(sheet.Bounds())}
	}
	c, _ := NewClip(name, frames, nil, loop)
	return c
}

// FixedClip builds a clip from a horizontal strip of frameW-wide cells, all
// shown for the same duration.
func FixedClip(name string, sheet Sheet, frameW, count int, d time.Duration, loop bool) (*Clip, error) {
	b := sheet.Bounds()
	if frameW <= 0 {
		return nil, fmt.Errorf("%w: %s", errNoFrames, name)
	}
	var frames []image.Image
	var durations []time.Duration
	for i := 0; i < count; i++ {
		r := image.Rect(i*frameW, 0, (i+1)*frameW, b.Dy()).Add(b.Min)
		if !r.In(b) {
			break
		}
		frames = append(frames, sheet.SubImage(r))
		durations = append(durations, d)
	}
	return NewClip(name, frames, durations, loop)
}
