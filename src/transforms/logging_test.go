package transforms_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/gitpan/Data-Transform/src/transforms"
	"github.com/gitpan/Data-Transform/src/types"
)

// Test 1: Data passes through unchanged while being logged
func TestLogging_Passthrough(t *testing.T) {
	var buf bytes.Buffer
	l := transforms.NewLogging(log.New(&buf, "", 0), "conn-1 ", true)

	out := l.TakeAll(types.Data("hello"))
	if len(out) != 1 || out[0].Value() != "hello" {
		t.Fatalf("TakeAll = %v, want hello unchanged", out)
	}

	logged := buf.String()
	if !strings.Contains(logged, "conn-1 [take]") || !strings.Contains(logged, "hello") {
		t.Errorf("log output %q should record the take with its prefix", logged)
	}
}

// Test 2: Emit logs each item and passes it through
func TestLogging_Emit(t *testing.T) {
	var buf bytes.Buffer
	l := transforms.NewLogging(log.New(&buf, "", 0), "", true)

	chunks := l.Emit([]interface{}{"reply"})
	if len(chunks) != 1 || chunks[0] != "reply" {
		t.Fatalf("Emit = %v, want reply unchanged", chunks)
	}
	if !strings.Contains(buf.String(), "[emit]") {
		t.Errorf("log output %q should record the emit", buf.String())
	}
}

// Test 3: Disabling silences output without breaking the pipeline
func TestLogging_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := transforms.NewLogging(log.New(&buf, "", 0), "", true)
	l.SetEnabled(false)

	out := l.TakeAll(types.Data("quiet"))
	if len(out) != 1 || out[0].Value() != "quiet" {
		t.Fatalf("TakeAll = %v, want quiet unchanged", out)
	}
	if buf.Len() != 0 {
		t.Errorf("log output %q, want none while disabled", buf.String())
	}
}

// Test 4: Large payloads are truncated, and payload logging can be
// reduced to types only
func TestLogging_PayloadControl(t *testing.T) {
	var buf bytes.Buffer
	l := transforms.NewLogging(log.New(&buf, "", 0), "", true)

	l.TakeAll(types.Data(strings.Repeat("x", 4096)))
	if !strings.Contains(buf.String(), "(truncated)") {
		t.Error("oversized payloads should be truncated in the log")
	}

	buf.Reset()
	typesOnly := transforms.NewLogging(log.New(&buf, "", 0), "", false)
	typesOnly.TakeAll(types.Data("secret"))
	if strings.Contains(buf.String(), "secret") {
		t.Errorf("log output %q should not include payloads when disabled", buf.String())
	}
}

// Test 5: Clone keeps settings and logger
func TestLogging_Clone(t *testing.T) {
	var buf bytes.Buffer
	l := transforms.NewLogging(log.New(&buf, "c ", 0), "p ", true)
	l.Feed(types.Data("pending"))

	clone := l.Clone()
	if clone.PeekPending() != nil {
		t.Error("clone should have an empty buffer")
	}

	clone.TakeAll(types.Data("via-clone"))
	if !strings.Contains(buf.String(), "via-clone") {
		t.Error("clone should log to the same logger")
	}
}
