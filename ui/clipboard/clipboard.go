// Package clipboard copies row text to the system clipboard: OSC 52 first,
// which also works over SSH, then the native clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err == nil {
		defer tty.Close()
		if err := CopyOSC52(tty, text); err == nil {
			return nil
		}
	}
	return CopyNative(text)
}

// CopyOSC52 writes the OSC 52 set-clipboard sequence for text to w,
// wrapped for tmux or screen when running inside one.
func CopyOSC52(w io.Writer, text string) error {
	seq := sequence(text)
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("clipboard: write osc52: %w", err)
	}
	return nil
}

func sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}
	return seq
}

// CopyNative uses the platform clipboard (pbcopy, xclip, xsel, wl-copy or
// the Windows API).
func CopyNative(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no native clipboard available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
