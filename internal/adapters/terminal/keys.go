package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"

	"github.com/B-1P/ledtomato/internal/ports"
)

// EnterKey is reported when the user presses Enter on an empty line.
const EnterKey = "enter"

// KeyWatcher reads lines from the terminal in the background and remembers
// the first one as the pending cancel key. The terminal stays in cooked mode,
// so a key counts once Enter is pressed.
type KeyWatcher struct {
	reader cancelreader.CancelReader
	done   chan struct{}

	mu      sync.Mutex
	key     string
	pending bool
}

var _ ports.CancelSource = (*KeyWatcher)(nil)

func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func WatchKeys(in io.Reader) (*KeyWatcher, error) {
	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, err
	}

	w := &KeyWatcher{reader: reader, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

// CancelSourceFor watches stdin when it is a terminal and never cancels
// otherwise. The returned func releases the terminal.
func CancelSourceFor(in *os.File) (ports.CancelSource, func()) {
	if !IsInteractive(in) {
		return ports.NoCancel{}, func() {}
	}

	watcher, err := WatchKeys(in)
	if err != nil {
		return ports.NoCancel{}, func() {}
	}
	return watcher, func() { _ = watcher.Close() }
}

func (w *KeyWatcher) loop() {
	defer close(w.done)

	lines := bufio.NewReader(w.reader)
	for {
		line, err := lines.ReadString('\n')
		if line != "" {
			w.record(line)
		}
		if err != nil {
			return
		}
	}
}

func (w *KeyWatcher) record(line string) {
	key := strings.TrimSpace(line)
	if key == "" {
		key = EnterKey
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending {
		return
	}
	w.key = key
	w.pending = true
}

func (w *KeyWatcher) Pending() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.key, w.pending
}

// Close stops the background reader. A reader that cannot be canceled is
// left to finish on its own.
func (w *KeyWatcher) Close() error {
	if w.reader.Cancel() {
		<-w.done
	}
	err := w.reader.Close()
	if errors.Is(err, cancelreader.ErrCanceled) {
		return nil
	}
	return err
}
