package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// SystemClipboard is the OS clipboard via atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// ClipboardCleaner copies secrets to the clipboard and wipes them after a
// TTL. A value is wiped only while the clipboard still holds it, so text
// the user copied afterwards is left alone. Stopping the cleaner wipes a
// pending value immediately.
type ClipboardCleaner struct {
	clipboard Clipboard
	ttl       time.Duration

	mu      sync.Mutex
	pending string
	timer   *time.Timer
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewClipboardCleaner creates an idle cleaner. A non-positive ttl disables
// the timed wipe; the value is then wiped only on Stop.
func NewClipboardCleaner(cb Clipboard, ttl time.Duration, logger *logger.Logger) *ClipboardCleaner {
	return &ClipboardCleaner{
		clipboard: cb,
		ttl:       ttl,
		logger:    logger,
	}
}

// Copy writes value to the clipboard and schedules its wipe. A previous
// pending wipe is replaced.
func (c *ClipboardCleaner) Copy(value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = value
	if c.ttl > 0 {
		c.timer = time.AfterFunc(c.ttl, func() { c.wipe(value) })
	}

	return nil
}

// TTL is the delay between Copy and the wipe.
func (c *ClipboardCleaner) TTL() time.Duration {
	return c.ttl
}

// Start implements Worker. The cleaner flushes when ctx is cancelled.
func (c *ClipboardCleaner) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		<-jobCtx.Done()
		c.flush()
	}()
}

// Stop implements Worker.
func (c *ClipboardCleaner) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	c.wg.Wait()
}

func (c *ClipboardCleaner) flush() {
	c.mu.Lock()
	value := c.pending
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	if value != "" {
		c.wipe(value)
	}
}

func (c *ClipboardCleaner) wipe(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != value {
		return
	}
	c.pending = ""

	current, err := c.clipboard.ReadAll()
	if err != nil {
		c.logger.Err(err).Str("func", "*ClipboardCleaner.wipe").Msg("error reading clipboard")
		return
	}
	if current != value {
		return
	}

	if err = c.clipboard.WriteAll(""); err != nil {
		c.logger.Err(err).Str("func", "*ClipboardCleaner.wipe").Msg("error clearing clipboard")
		return
	}
	c.logger.Debug().Str("func", "*ClipboardCleaner.wipe").Msg("clipboard cleared")
}
