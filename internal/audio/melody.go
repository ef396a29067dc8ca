package audio

import "math"

// melodyNotes is an arpeggio in C major, in Hz.
var melodyNotes = []float64{261.63, 329.63, 392.00, 523.25, 493.88, 440.00, 392.00, 329.63}

const noteSeconds = 0.4

// Melody synthesizes the fallback background loop as 16-bit little-endian
// stereo PCM at sampleRate.
func Melody(sampleRate int) []byte {
	perNote := int(float64(sampleRate) * noteSeconds)
	buf := make([]byte, perNote*len(melodyNotes)*4)
	idx := 0

	for _, freq := range melodyNotes {
		harmony := freq * 1.25
		for j := 0; j < perNote; j++ {
			t := float64(j) / float64(sampleRate)
			envelope := math.Exp(-1.5 * t)
			v := int16((math.Sin(2*math.Pi*freq*t)*1500 + math.Sin(2*math.Pi*harmony*t)*800) * envelope)

			for ch := 0; ch < 2; ch++ {
				buf[idx] = byte(v)
				buf[idx+1] = byte(v >> 8)
				idx += 2
			}
		}
	}
	return buf
}
