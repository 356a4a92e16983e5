package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

const publishTimeout = 30 * time.Second

// Publisher ships a batch of aggregated entries to a topic.
type Publisher interface {
	PublishMessage(ctx context.Context, topic string, payload interface{}) error
}

type CollectionConfig struct {
	TimeInterval   time.Duration // periodic flush interval
	CountThreshold int           // unique entries that force a flush
	Topic          string
	Publisher      Publisher
}

// AggregatedLogEntry is one deduplicated log line with occurrence counts.
type AggregatedLogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector batches identical log entries and publishes them either on a
// timer or once the number of unique entries crosses the threshold.
type LogCollector struct {
	config  *CollectionConfig
	mu      sync.Mutex
	entries map[string]*AggregatedLogEntry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	ctx, cancel := context.WithCancel(context.Background())
	c := &LogCollector{
		config:  config,
		entries: make(map[string]*AggregatedLogEntry),
		ctx:     ctx,
		cancel:  cancel,
	}

	c.wg.Add(1)
	go c.flushLoop()

	return c
}

// AddLog records one occurrence, merging with earlier identical entries.
func (c *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := entryKey(level, message, fields, caller)

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.Count++
		entry.LastSeen = now
	} else {
		c.entries[key] = &AggregatedLogEntry{
			Level:     level,
			Message:   message,
			Fields:    fields,
			Caller:    caller,
			Count:     1,
			FirstSeen: now,
			LastSeen:  now,
		}
	}

	if len(c.entries) >= c.config.CountThreshold {
		c.publish(c.drain())
	}
}

// Close stops the flush loop, flushes what is buffered and waits for
// in-flight publishes.
func (c *LogCollector) Close() {
	c.cancel()
	c.wg.Wait()
}

// entryKey identifies a log line for deduplication. json.Marshal sorts map
// keys, so equal field maps produce equal keys.
func entryKey(level, message string, fields map[string]interface{}, caller string) string {
	fieldsJSON, _ := json.Marshal(fields)
	return level + "\x00" + message + "\x00" + caller + "\x00" + string(fieldsJSON)
}

func (c *LogCollector) flushLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.TimeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			batch := c.drain()
			c.mu.Unlock()
			c.publish(batch)
		case <-c.ctx.Done():
			c.mu.Lock()
			batch := c.drain()
			c.mu.Unlock()
			c.publish(batch)
			return
		}
	}
}

// drain empties the buffer and returns its contents. Callers hold c.mu.
func (c *LogCollector) drain() []AggregatedLogEntry {
	if len(c.entries) == 0 {
		return nil
	}
	batch := make([]AggregatedLogEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		batch = append(batch, *entry)
	}
	c.entries = make(map[string]*AggregatedLogEntry)
	return batch
}

func (c *LogCollector) publish(batch []AggregatedLogEntry) {
	if len(batch) == 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := c.config.Publisher.PublishMessage(ctx, c.config.Topic, batch); err != nil {
			fmt.Fprintf(os.Stderr, "log collector: publish failed: %v\n", err)
		}
	}()
}
