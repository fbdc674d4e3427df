// Package history records spin results for the on-screen list and a
// rotating log file.
package history

import (
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/wheel-of-luck/internal/logger"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

// Entry is one settled spin.
type Entry struct {
	Seq      uint64
	Label    string
	Index    int
	Options  int
	At       time.Time
	Duration time.Duration
	AutoStop bool
}

// Recorder keeps the most recent results. It is fed from the spin
// controller's subscriber callback and, like the controller, is used from a
// single goroutine.
type Recorder struct {
	capacity int
	entries  []Entry
	sink     *zap.Logger
	file     io.Closer

	seq       uint64
	startedAt time.Time
	autoStop  bool
}

// NewRecorder keeps up to capacity entries in memory and writes every entry
// to sink. A nil sink disables the file.
func NewRecorder(capacity int, sink *zap.Logger) *Recorder {
	if capacity <= 0 {
		capacity = 1
	}
	if sink == nil {
		sink = zap.NewNop()
	}
	return &Recorder{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
		sink:     sink,
	}
}

// NewFileRecorder keeps up to capacity entries and appends each one to a
// rotating JSON-lines file at path. Close releases the file.
func NewFileRecorder(capacity int, path string) *Recorder {
	f := logger.RotatingFile(path)
	r := NewRecorder(capacity, NewFileSink(f))
	r.file = f
	return r
}

// NewFileSink returns a JSON-lines logger writing to w.
func NewFileSink(w io.Writer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "at"
	enc.MessageKey = "event"
	enc.LevelKey = ""
	enc.CallerKey = ""
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(enc),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

// Observe is a spin.Controller subscriber.
func (r *Recorder) Observe(ev spin.Event) {
	switch ev.Kind {
	case spin.EventSpinStarted:
		r.startedAt = ev.At
		r.autoStop = false
	case spin.EventStopRequested:
		r.autoStop = ev.Auto
	case spin.EventSettled:
		r.seq++
		e := Entry{
			Seq:      r.seq,
			Label:    ev.Label,
			Index:    ev.Index,
			Options:  ev.Options,
			At:       ev.At,
			Duration: ev.At.Sub(r.startedAt),
			AutoStop: r.autoStop,
		}
		r.push(e)
		r.sink.Info("result",
			zap.Uint64("seq", e.Seq),
			zap.String("label", e.Label),
			zap.Int("index", e.Index),
			zap.Int("options", e.Options),
			zap.Duration("duration", e.Duration),
			zap.Bool("auto_stop", e.AutoStop),
		)
	}
}

func (r *Recorder) push(e Entry) {
	if len(r.entries) == r.capacity {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, e)
}

// Recent returns the kept entries, oldest first.
func (r *Recorder) Recent() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Last returns the newest entry.
func (r *Recorder) Last() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Total is the number of results seen since start, including evicted ones.
func (r *Recorder) Total() uint64 { return r.seq }

// Close flushes the sink and closes the history file, if any.
func (r *Recorder) Close() error {
	err := r.sink.Sync()
	if r.file != nil {
		err = errors.Join(err, r.file.Close())
		r.file = nil
	}
	return err
}
