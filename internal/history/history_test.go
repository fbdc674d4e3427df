package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func settle(r *Recorder, label string, idx int, auto bool, took time.Duration) {
	r.Observe(spin.Event{Kind: spin.EventSpinStarted, At: t0, Options: 4})
	r.Observe(spin.Event{Kind: spin.EventStopRequested, At: t0.Add(took / 2), Auto: auto})
	r.Observe(spin.Event{Kind: spin.EventSettled, At: t0.Add(took), Label: label, Index: idx, Options: 4})
}

func TestRecorderKeepsMostRecent(t *testing.T) {
	r := NewRecorder(2, nil)
	settle(r, "A", 0, false, time.Second)
	settle(r, "B", 1, true, time.Second)
	settle(r, "C", 2, false, time.Second)

	got := r.Recent()
	if len(got) != 2 || got[0].Label != "B" || got[1].Label != "C" {
		t.Fatalf("recent = %+v", got)
	}
	if !got[0].AutoStop || got[1].AutoStop {
		t.Fatalf("auto stop flags wrong: %+v", got)
	}
	if r.Total() != 3 || got[1].Seq != 3 {
		t.Fatalf("total = %d, seq = %d", r.Total(), got[1].Seq)
	}
	last, ok := r.Last()
	if !ok || last.Label != "C" {
		t.Fatalf("last = %+v", last)
	}
}

func TestRecorderEmpty(t *testing.T) {
	r := NewRecorder(3, nil)
	if _, ok := r.Last(); ok {
		t.Fatalf("empty recorder has a last entry")
	}
	if len(r.Recent()) != 0 {
		t.Fatalf("empty recorder has entries")
	}
}

func TestRecorderWritesSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRecorder(5, zap.New(core))
	settle(r, "Free Meal", 6, false, 3*time.Second)

	entries := logs.FilterMessage("result").All()
	if len(entries) != 1 {
		t.Fatalf("sink entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["label"] != "Free Meal" || fields["index"] != int64(6) {
		t.Fatalf("fields = %v", fields)
	}
	if fields["duration"] != 3*time.Second {
		t.Fatalf("duration = %v", fields["duration"])
	}
}

func TestFileSinkWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	r := NewFileRecorder(5, path)
	settle(r, "50% Off", 1, true, time.Second)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(b))
	for _, want := range []string{`"event":"result"`, `"label":"50% Off"`, `"auto_stop":true`} {
		if !strings.Contains(line, want) {
			t.Fatalf("history line %q missing %s", line, want)
		}
	}
}

type countingCloser struct{ n int }

func (c *countingCloser) Close() error {
	c.n++
	return nil
}

func TestCloseReleasesFileOnce(t *testing.T) {
	r := NewFileRecorder(5, filepath.Join(t.TempDir(), "history.log"))
	if r.file == nil {
		t.Fatalf("file recorder has no file to close")
	}
	cc := &countingCloser{}
	r.file = cc

	for i := 0; i < 2; i++ {
		if err := r.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if cc.n != 1 {
		t.Fatalf("file closed %d times, want 1", cc.n)
	}
}
