package component

// Audio requests playback of named sounds. Parallel slices are indexed by
// sound; the audio system owns the actual players.
type Audio struct {
	Names  []string
	Volume []float64
	Loop   []bool
	Play   []bool
	Stop   []bool
}

var AudioComponent = NewComponent[Audio]()

// Index returns the slot for name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}
