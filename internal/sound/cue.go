package sound

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// Cue is a sound tied to a wheel transition.
type Cue int

const (
	CueSpinStart Cue = iota
	CueClick
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueSpinStart:
		return "spin_start"
	case CueClick:
		return "click"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Extensions lists the audio files LoadFile can decode.
var Extensions = []string{"*.wav", "*.mp3", "*.flac"}

// LoadFile decodes a wav, mp3 or flac file fully into memory, resampled to
// rate, so it can be replayed without touching the disk again.
func LoadFile(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// Decode based on extension
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
