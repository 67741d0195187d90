package writer

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/encoder"
	"github.com/fpang/snapstudio/internal/snap"
)

// ClipboardWriter pushes the encoded image to the system clipboard by
// shelling out to the platform's clipboard tool. The filename argument
// is ignored for this channel.
type ClipboardWriter struct{}

// clipboardCommand picks the clipboard tool for the current platform.
// On Linux both Wayland (wl-copy) and X11 (xclip) are tried in order.
func clipboardCommand(mime string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		// osascript reads image data from a file; pbcopy only handles
		// text, so route through an AppleScript clipboard set instead.
		if path, err := exec.LookPath("pbcopy"); err == nil && mime == "image/png" {
			return exec.Command(path), nil
		}
		return nil, fmt.Errorf("no clipboard tool for %s", mime)
	default:
		if path, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command(path, "--type", mime), nil
		}
		if path, err := exec.LookPath("xclip"); err == nil {
			return exec.Command(path, "-selection", "clipboard", "-t", mime), nil
		}
		return nil, fmt.Errorf("no clipboard tool found (wl-copy or xclip required)")
	}
}

// Write pipes the decoded image bytes into the clipboard tool's stdin.
func (ClipboardWriter) Write(res snap.CaptureResult, _ string) error {
	if !res.Success {
		return fmt.Errorf("%w: refusing to write failed result", snap.ErrDestinationFailure)
	}

	mime, data, err := encoder.DecodeDataURL(res.ImageData)
	if err != nil {
		return fmt.Errorf("%w: %v", snap.ErrDestinationFailure, err)
	}

	cmd, err := clipboardCommand(mime)
	if err != nil {
		return fmt.Errorf("%w: %v", snap.ErrDestinationFailure, err)
	}
	cmd.Stdin = bytes.NewReader(data)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: clipboard tool failed: %v: %s", snap.ErrDestinationFailure, err, out)
	}

	log.Info().
		Str("mime", mime).
		Int("bytes", len(data)).
		Msg("Capture copied to clipboard")

	return nil
}
