package assets

import (
	"encoding/binary"
	"testing"
)

func TestLoadTones(t *testing.T) {
	specs, err := LoadTones()
	if err != nil {
		t.Fatalf("LoadTones: %v", err)
	}
	for _, name := range []string{"grab", "hover", "launch", "fire_primary", "fire_secondary"} {
		if _, ok := specs[name]; !ok {
			t.Fatalf("missing tone %q", name)
		}
	}
}

func TestParseTonesRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no_name", yaml: "tones:\n  - duration: 1\n"},
		{name: "no_duration", yaml: "tones:\n  - name: a\n"},
		{name: "duplicate", yaml: "tones:\n  - name: a\n    duration: 1\n  - name: a\n    duration: 1\n"},
		{name: "bad_yaml", yaml: "tones: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTones([]byte(tc.yaml)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestTonePCM(t *testing.T) {
	spec := ToneSpec{Name: "t", Wave: "sine", Freq: 440, Duration: 0.1, Volume: 1, Attack: 0.01}
	b := spec.PCM(1000)
	if len(b) != 100*4 {
		t.Fatalf("expected 100 stereo frames, got %d bytes", len(b))
	}
	if first := int16(binary.LittleEndian.Uint16(b[0:])); first != 0 {
		t.Fatalf("attack should start silent, got %d", first)
	}
	l := binary.LittleEndian.Uint16(b[40:])
	r := binary.LittleEndian.Uint16(b[42:])
	if l != r {
		t.Fatalf("channels should match")
	}
}

func TestToneUnknown(t *testing.T) {
	if _, err := Tone("no_such_tone"); err == nil {
		t.Fatalf("expected unknown tone error")
	}
	b, err := Tone("grab")
	if err != nil || len(b) == 0 {
		t.Fatalf("grab tone: %v", err)
	}
	again, _ := Tone("grab")
	if &again[0] != &b[0] {
		t.Fatalf("tones should be cached")
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"tones.yaml":              "tones.yaml",
		"assets/tones.yaml":       "tones.yaml",
		"/home/x/assets/a/b.yaml": "a/b.yaml",
	}
	for in, want := range tests {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}
