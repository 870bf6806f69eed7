package logger

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"
)

func fixedStamp(time.Time) string { return "ts" }

func testLogger(cfg Config) *Logger {
	if cfg.Sink == nil {
		cfg.Sink = io.Discard
	}
	if cfg.Timestamp == nil {
		cfg.Timestamp = fixedStamp
	}
	return New(cfg)
}

func TestCapacityScenario(t *testing.T) {
	l := testLogger(Config{MaxStackSize: 2})

	l.Log("a")
	l.Warn("b", "X")
	l.Error("c")

	got := l.Snapshot()
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Line != "WARN: [ts] (X): b" {
		t.Errorf("got %q, want %q", got[0].Line, "WARN: [ts] (X): b")
	}
	if got[1].Line != "ERROR: [ts]: c" {
		t.Errorf("got %q, want %q", got[1].Line, "ERROR: [ts]: c")
	}
}

func TestSurvivorsAreMostRecentInOrder(t *testing.T) {
	l := testLogger(Config{MaxStackSize: 3})
	for i := 0; i < 7; i++ {
		l.Log(strconv.Itoa(i))
	}

	got := l.Snapshot()
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for i, want := range []string{"4", "5", "6"} {
		if got[i].Message != want {
			t.Errorf("record %d: got %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestExportMatchesSnapshotLines(t *testing.T) {
	l := testLogger(Config{MaxStackSize: 10})
	l.Log("plain")
	l.Info("info", "mod")
	l.Warn("warn")
	l.Error("error", "")

	var lines []string
	for _, r := range l.Snapshot() {
		lines = append(lines, r.Line)
	}
	if got, want := l.Export(), strings.Join(lines, "\n"); got != want {
		t.Errorf("Export:\n%q\nwant:\n%q", got, want)
	}
}

func TestRecordFields(t *testing.T) {
	l := testLogger(Config{})
	l.Info("hello", "mod")

	got := l.Snapshot()
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.Severity != SeverityInfo || r.Message != "hello" || r.Source != "mod" || !r.HasSource {
		t.Errorf("unexpected record: %+v", r)
	}
	if r.Timestamp != "ts" {
		t.Errorf("timestamp %q, want %q", r.Timestamp, "ts")
	}
	if r.Line != "INFO: [ts] (mod): hello" {
		t.Errorf("line %q, want %q", r.Line, "INFO: [ts] (mod): hello")
	}
}

func TestUncoloredLinesHaveNoDecoration(t *testing.T) {
	l := testLogger(Config{})
	l.Log("a", "mod")
	l.Info("b")
	l.Warn("c")
	l.Error("d")

	for _, r := range l.Snapshot() {
		if strings.Contains(r.Line, "\x1b") {
			t.Errorf("line contains decoration markers: %q", r.Line)
		}
	}
}

func TestSinkMirrorsEveryLine(t *testing.T) {
	var sink bytes.Buffer
	l := testLogger(Config{Sink: &sink})
	l.Log("a")
	l.Error("b")

	want := "[ts]: a\nERROR: [ts]: b\n"
	if sink.String() != want {
		t.Errorf("sink got %q, want %q", sink.String(), want)
	}
}

func TestSubscriberReceivesEveryRecordInOrder(t *testing.T) {
	l := testLogger(Config{MaxStackSize: 2})

	var seen []Record
	l.Subscribe(func(r Record) { seen = append(seen, r) })

	l.Log("a")
	l.Info("b")
	l.Warn("c")

	if len(seen) != 3 {
		t.Fatalf("subscriber got %d notifications, want 3", len(seen))
	}
	for i, want := range []string{"a", "b", "c"} {
		if seen[i].Message != want {
			t.Errorf("notification %d: got %q, want %q", i, seen[i].Message, want)
		}
	}
	// Eviction does not suppress emission.
	if l.Count() != 2 {
		t.Errorf("count %d, want 2", l.Count())
	}
}

func TestUnsubscribeMidStream(t *testing.T) {
	l := testLogger(Config{})

	var n int
	id := l.Subscribe(func(Record) { n++ })
	l.Log("a")
	l.Unsubscribe(id)
	l.Log("b")

	if n != 1 {
		t.Errorf("subscriber got %d notifications, want 1", n)
	}
}

func TestPanickingSubscriberDoesNotCorruptBuffer(t *testing.T) {
	l := testLogger(Config{})

	var after int
	l.Subscribe(func(Record) { panic("boom") })
	l.Subscribe(func(Record) { after++ })

	l.Warn("still logged")

	if after != 1 {
		t.Errorf("later subscriber got %d notifications, want 1", after)
	}
	if l.Count() != 1 {
		t.Errorf("count %d, want 1", l.Count())
	}
	if l.Snapshot()[0].Message != "still logged" {
		t.Errorf("unexpected record: %+v", l.Snapshot()[0])
	}
}

func TestSubscriberMaySnapshot(t *testing.T) {
	l := testLogger(Config{})

	var length int
	l.Subscribe(func(Record) { length = len(l.Snapshot()) })
	l.Log("a")

	if length != 1 {
		t.Errorf("snapshot inside subscriber saw %d records, want 1", length)
	}
}

func TestFormattedVariants(t *testing.T) {
	l := testLogger(Config{})
	l.Logf("n=%d", 1)
	l.Infof("n=%d", 2)
	l.Warnf("n=%d", 3)
	l.Errorf("n=%d", 4)

	got := l.Snapshot()
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}
	wantLines := []string{"[ts]: n=1", "INFO: [ts]: n=2", "WARN: [ts]: n=3", "ERROR: [ts]: n=4"}
	for i, want := range wantLines {
		if got[i].Line != want {
			t.Errorf("record %d: got %q, want %q", i, got[i].Line, want)
		}
	}
}

func TestDeprecatedWrappers(t *testing.T) {
	l := testLogger(Config{})
	l.Log("a")
	l.Error("b", "mod")

	if l.Generate() != l.Export() {
		t.Errorf("Generate %q differs from Export %q", l.Generate(), l.Export())
	}
	gen := l.GenerateArray()
	snap := l.Snapshot()
	if len(gen) != len(snap) {
		t.Fatalf("GenerateArray length %d, Snapshot length %d", len(gen), len(snap))
	}
	for i := range gen {
		if gen[i] != snap[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, gen[i], snap[i])
		}
	}
}

func TestNonPositiveCapacityFallsBack(t *testing.T) {
	l := testLogger(Config{MaxStackSize: -1})
	for i := 0; i < DefaultMaxStackSize+1; i++ {
		l.Log("m")
	}
	if l.Count() != DefaultMaxStackSize {
		t.Errorf("count %d, want %d", l.Count(), DefaultMaxStackSize)
	}
}

func TestDegenerateInputs(t *testing.T) {
	l := testLogger(Config{})
	l.Log("")
	l.Log("", "")

	got := l.Snapshot()
	if got[0].Line != "[ts]: " {
		t.Errorf("empty message: got %q, want %q", got[0].Line, "[ts]: ")
	}
	if got[1].Line != "[ts] (): " {
		t.Errorf("empty source: got %q, want %q", got[1].Line, "[ts] (): ")
	}
}

func TestRenderTimestampStableFormat(t *testing.T) {
	at := time.Date(2026, time.March, 4, 15, 4, 5, 6*int(time.Millisecond), time.UTC)
	if got, want := renderTimestamp(at), "3/4/2026, 3:04:05 PM.006"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Milliseconds stay three digits regardless of value.
	at = at.Add(114 * time.Millisecond)
	if got, want := renderTimestamp(at), "3/4/2026, 3:04:05 PM.120"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDeterministicLines(t *testing.T) {
	a := testLogger(Config{})
	b := testLogger(Config{})
	a.Warn("same", "mod")
	b.Warn("same", "mod")

	if a.Snapshot()[0].Line != b.Snapshot()[0].Line {
		t.Errorf("identical inputs produced %q and %q", a.Snapshot()[0].Line, b.Snapshot()[0].Line)
	}
}
