package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

const rate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("streamer never drained")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	d := 100 * time.Millisecond
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		samples := drain(t, NewTone(440, d, wave, rate))
		if len(samples) != rate.N(d) {
			t.Fatalf("wave %d: %d samples, want %d", wave, len(samples), rate.N(d))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	d := 50 * time.Millisecond
	samples := drain(t, NewEnvelope(NewTone(200, d, WaveSquare, rate), d, 5*time.Millisecond, 10*time.Millisecond, rate))
	if first := samples[0][0]; first != 0 {
		t.Fatalf("attack should start silent, got %v", first)
	}
	last := samples[len(samples)-1][0]
	if last > 0.01 || last < -0.01 {
		t.Fatalf("release should end near silence, got %v", last)
	}
}

func TestCuesAreFinite(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"whoosh":  Whoosh(rate),
		"click":   Click(rate),
		"fanfare": Fanfare(rate),
	} {
		samples := drain(t, s)
		if len(samples) == 0 {
			t.Fatalf("%s produced no samples", name)
		}
		if len(samples) > rate.N(2*time.Second) {
			t.Fatalf("%s is too long: %d samples", name, len(samples))
		}
	}
}

func TestTapSnapshotAndLevel(t *testing.T) {
	tap := NewTap(NewTone(440, time.Second, WaveSquare, rate), 8)
	if tap.Level(8) != 0 {
		t.Fatalf("fresh tap should be silent")
	}
	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf)

	snap := tap.Snapshot(100)
	if len(snap) != 8 {
		t.Fatalf("snapshot len = %d, want ring size 8", len(snap))
	}
	if snap[len(snap)-1] != buf[len(buf)-1] {
		t.Fatalf("most recent sample should be last")
	}
	if lv := tap.Level(8); lv < 0.99 || lv > 1.01 {
		t.Fatalf("square wave level = %v, want 1", lv)
	}
	if tap.Snapshot(0) != nil {
		t.Fatalf("empty snapshot should be nil")
	}
}

func TestLoadFileDecodesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "win.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewTone(440, 200*time.Millisecond, WaveSine, format.SampleRate), format); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	buf, err := LoadFile(path, rate)
	if err != nil {
		t.Fatal(err)
	}
	want := rate.N(200 * time.Millisecond)
	if got := buf.Len(); got < want-100 || got > want+100 {
		t.Fatalf("resampled length = %d, want about %d", got, want)
	}
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "win.ogg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, rate); err == nil {
		t.Fatalf("ogg should be rejected")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.wav"), rate); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestPlayerSilentUntilStarted(t *testing.T) {
	p := New(config.SoundConfig{Enabled: true, Volume: 1}, nil)
	p.Play(CueWin)
	if p.mixer.Len() != 0 {
		t.Fatalf("unstarted player queued a cue")
	}
}

func TestPlayerQueuesCuesFromEvents(t *testing.T) {
	p := New(config.SoundConfig{Enabled: true, Volume: 1}, nil)
	p.started = true
	p.lock, p.unlock = func() {}, func() {}
	closed := 0
	p.shutdown = func() { closed++ }

	p.Observe(spin.Event{Kind: spin.EventSpinStarted})
	p.Observe(spin.Event{Kind: spin.EventStopRequested})
	p.Observe(spin.Event{Kind: spin.EventSettled, Label: "A"})
	if n := p.mixer.Len(); n != 2 {
		t.Fatalf("queued %d cues, want start and win", n)
	}

	buf := make([][2]float64, rate.N(config.SoundBufferTime))
	p.tap.Stream(buf)
	if p.Level() <= 0 {
		t.Fatalf("level should rise while cues play")
	}

	p.Close()
	if p.mixer.Len() != 0 {
		t.Fatalf("Close left %d cues", p.mixer.Len())
	}
	p.Close()
	if closed != 1 {
		t.Fatalf("speaker closed %d times, want 1", closed)
	}
}

func TestPlayerFallsBackWhenWinFileMissing(t *testing.T) {
	p := New(config.SoundConfig{Volume: 1, WinFile: "/nonexistent/win.wav"}, nil)
	if p.win != nil {
		t.Fatalf("missing file should leave fanfare in place")
	}
	if p.streamer(CueWin) == nil {
		t.Fatalf("no win streamer")
	}
}
