package window

import (
	"encoding/binary"
	"math"
)

// sampleRate of the audio context and synthesized effects.
const sampleRate = 44100

// jumpSound synthesizes the jump effect: a short upward chirp with a fast
// decay, as 16-bit little-endian stereo PCM.
func jumpSound() []byte {
	const (
		duration = 0.12
		fromHz   = 440.0
		toHz     = 880.0
	)

	n := int(sampleRate * duration)
	pcm := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / sampleRate

		// Square wave, decaying linearly to silence
		v := 1.0
		if math.Sin(phase) < 0 {
			v = -1.0
		}
		sample := int16(v * (1 - t) * 0.6 * math.MaxInt16)

		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(sample))
	}
	return pcm
}
