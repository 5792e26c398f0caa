package obj

import (
	"fmt"

	"github.com/milk9111/mageknight/prefabs"
)

// Audio is a fire-and-forget sound sink. Implementations swallow failures.
type Audio interface {
	PlayClip(path string, channel int)
	PlayLoop(path string)
}

// NopAudio discards everything.
type NopAudio struct{}

func (NopAudio) PlayClip(string, int) {}
func (NopAudio) PlayLoop(string)      {}

type sounds map[string]prefabs.AudioSpec

func newSounds(specs []prefabs.AudioSpec) sounds {
	s := make(sounds, len(specs))
	for _, spec := range specs {
		s[spec.Name] = spec
	}
	return s
}

// play looks up a named effect. File names may carry fmt verbs filled by args.
func (s sounds) play(a Audio, name string, args ...any) {
	if a == nil {
		return
	}
	spec, ok := s[name]
	if !ok || spec.File == "" {
		return
	}
	file := spec.File
	if len(args) > 0 {
		file = fmt.Sprintf(file, args...)
	}
	a.PlayClip(file, spec.Channel)
}
