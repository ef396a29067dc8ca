// Package audio plays the looping background track. The game only ever asks
// it to play or pause; the mute flag itself lives in the engine.
package audio

// SampleRate is the output sample rate used for all audio.
const SampleRate = 44100

// Controller is the audio surface the engine drives.
type Controller interface {
	Play()
	Pause()
	Close() error
}

// Silent is a Controller that does nothing. It is used when audio is
// disabled or no output device is available.
type Silent struct{}

func (Silent) Play()        {}
func (Silent) Pause()       {}
func (Silent) Close() error { return nil }

// Recorder is a Controller that remembers the calls made to it.
type Recorder struct {
	Playing bool
	Plays   int
	Pauses  int
	Closed  bool
}

func (r *Recorder) Play() {
	r.Playing = true
	r.Plays++
}

func (r *Recorder) Pause() {
	r.Playing = false
	r.Pauses++
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}
