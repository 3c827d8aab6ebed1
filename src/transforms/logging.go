// Package transforms provides built-in transformers for the Data-Transform SDK.
package transforms

import (
	"fmt"
	"log"

	"github.com/gitpan/Data-Transform/src/core"
)

// Logging is a passthrough transformer that logs traffic for debugging
// and monitoring. Chunks and items flow through unchanged.
type Logging struct {
	*core.TransformerBase

	logger     *log.Logger
	logPrefix  string
	logPayload bool
	maxLogSize int
	enabled    bool
}

// NewLogging creates a logging transformer. A nil logger falls back to
// the standard logger.
func NewLogging(logger *log.Logger, logPrefix string, logPayload bool) *Logging {
	if logger == nil {
		logger = log.Default()
	}

	t := &Logging{
		logger:     logger,
		logPrefix:  logPrefix,
		logPayload: logPayload,
		maxLogSize: 1024, // Max 1KB of payload to log
		enabled:    true,
	}
	t.TransformerBase = core.MustTransformerBase(t, "logging", "monitoring")
	return t
}

// SetEnabled toggles logging without removing the transformer from the
// pipeline.
func (t *Logging) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// HandleChunk logs the chunk and returns it unchanged as an item.
func (t *Logging) HandleChunk(chunk interface{}) (interface{}, bool) {
	if chunk == nil {
		return nil, false
	}
	if t.enabled {
		t.logger.Printf("%s[take] %s", t.logPrefix, t.describe(chunk))
	}
	return chunk, true
}

// Emit logs each item and returns the items unchanged, one chunk per item.
func (t *Logging) Emit(items []interface{}) []interface{} {
	if len(items) == 0 {
		return nil
	}
	chunks := make([]interface{}, len(items))
	for i, item := range items {
		if t.enabled {
			t.logger.Printf("%s[emit] %s", t.logPrefix, t.describe(item))
		}
		chunks[i] = item
	}
	t.RecordEmit(uint64(len(items)), uint64(len(chunks)))
	return chunks
}

// Clone returns a fresh logging transformer with the same settings and
// logger.
func (t *Logging) Clone() core.Transformer {
	clone := NewLogging(t.logger, t.logPrefix, t.logPayload)
	clone.enabled = t.enabled
	return clone
}

// describe renders a payload for logging, truncated to maxLogSize.
func (t *Logging) describe(v interface{}) string {
	if !t.logPayload {
		return fmt.Sprintf("%T", v)
	}

	s := fmt.Sprintf("%v", v)
	if len(s) > t.maxLogSize {
		s = s[:t.maxLogSize] + "...(truncated)"
	}
	return fmt.Sprintf("%T %s", v, s)
}
