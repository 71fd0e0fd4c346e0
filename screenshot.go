package strobe

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where Stage writes screenshots unless
// Stage.ScreenshotDir says otherwise.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir as <timestamp>_<label>.png once Draw finishes.
// Scripts use this to record transitions mid-flight.
func (s *Stage) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// PendingScreenshots returns the number of captures waiting for a Draw.
func (s *Stage) PendingScreenshots() int {
	return len(s.screenshots)
}

// flushScreenshots writes every queued capture of screen. Failures are
// reported on stderr; a missed capture never stops the frame.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshots) == 0 {
		return
	}
	defer func() { s.screenshots = s.screenshots[:0] }()

	dir := s.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[strobe] screenshot: %v\n", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshots {
		path := filepath.Join(dir, stamp+"_"+screenshotName(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[strobe] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes, as read back from the GPU,
// to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// screenshotName keeps letters, digits, '-' and '.' and replaces everything
// else with '_'. Blank labels become "unlabeled".
func screenshotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
