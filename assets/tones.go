package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
)

// SampleRate is the rate every tone is rendered at.
const SampleRate = 44100

// ToneSpec describes one synthesised sound.
type ToneSpec struct {
	Name     string  `yaml:"name"`
	Wave     string  `yaml:"wave"`
	Freq     float64 `yaml:"freq"`
	EndFreq  float64 `yaml:"end_freq"`
	Duration float64 `yaml:"duration"`
	Volume   float64 `yaml:"volume"`
	Attack   float64 `yaml:"attack"`
	Release  float64 `yaml:"release"`
	// Vibrato is a pitch wobble rate in Hz.
	Vibrato float64 `yaml:"vibrato"`
}

type toneFile struct {
	Tones []ToneSpec `yaml:"tones"`
}

var (
	toneOnce  sync.Once
	toneSpecs map[string]ToneSpec
	toneErr   error

	pcmMu    sync.Mutex
	pcmCache = map[string][]byte{}
)

// LoadTones parses the embedded tone table.
func LoadTones() (map[string]ToneSpec, error) {
	toneOnce.Do(func() {
		b, err := LoadFile("tones.yaml")
		if err != nil {
			toneErr = fmt.Errorf("assets: read tones: %w", err)
			return
		}
		toneSpecs, toneErr = ParseTones(b)
	})
	return toneSpecs, toneErr
}

func ParseTones(b []byte) (map[string]ToneSpec, error) {
	var f toneFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("assets: parse tones: %w", err)
	}
	out := make(map[string]ToneSpec, len(f.Tones))
	for i, t := range f.Tones {
		if t.Name == "" {
			return nil, fmt.Errorf("assets: tone %d has no name", i)
		}
		if t.Duration <= 0 {
			return nil, fmt.Errorf("assets: tone %q has no duration", t.Name)
		}
		if _, dup := out[t.Name]; dup {
			return nil, fmt.Errorf("assets: duplicate tone %q", t.Name)
		}
		out[t.Name] = t
	}
	return out, nil
}

// Tone returns 16-bit little-endian stereo PCM for the named tone.
func Tone(name string) ([]byte, error) {
	pcmMu.Lock()
	defer pcmMu.Unlock()
	if b, ok := pcmCache[name]; ok {
		return b, nil
	}
	specs, err := LoadTones()
	if err != nil {
		return nil, err
	}
	spec, ok := specs[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown tone %q", name)
	}
	b := spec.PCM(SampleRate)
	pcmCache[name] = b
	return b, nil
}

// PCM renders the tone at sampleRate.
func (t ToneSpec) PCM(sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	out := make([]byte, n*4)
	end := t.EndFreq
	if end <= 0 {
		end = t.Freq
	}

	phase := 0.0
	noise := uint32(0x12345678)
	for i := 0; i < n; i++ {
		at := float64(i) / float64(sampleRate)
		frac := float64(i) / float64(n)
		freq := t.Freq + (end-t.Freq)*frac
		if t.Vibrato > 0 {
			freq *= 1 + 0.03*math.Sin(2*math.Pi*t.Vibrato*at)
		}
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch t.Wave {
		case "square":
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case "saw":
			v = 2*phase - 1
		case "noise":
			noise ^= noise << 13
			noise ^= noise >> 17
			noise ^= noise << 5
			v = float64(noise)/float64(math.MaxUint32)*2 - 1
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		v *= t.Volume * t.envelope(at)
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

func (t ToneSpec) envelope(at float64) float64 {
	g := 1.0
	if t.Attack > 0 && at < t.Attack {
		g = at / t.Attack
	}
	if t.Release > 0 {
		if left := t.Duration - at; left < t.Release {
			g = math.Min(g, left/t.Release)
		}
	}
	return math.Max(0, g)
}
