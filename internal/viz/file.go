package viz

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/san-kum/isingplot/internal/chart"
)

// FileDisplay writes figures under Dir and optionally opens them. A viewer
// that fails to start is reported on Logger; the saved file still counts.
type FileDisplay struct {
	Dir    string
	Format string
	Open   bool
	Opener func(path string) error
	Logger *log.Logger
}

func NewFileDisplay(dir, format string) *FileDisplay {
	return &FileDisplay{Dir: dir, Format: format}
}

// Path is where fig is written.
func (d *FileDisplay) Path(fig *chart.Figure) string {
	return filepath.Join(d.Dir, fig.Name+"."+d.Format)
}

func (d *FileDisplay) Show(fig *chart.Figure) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return err
	}

	path := d.Path(fig)
	if err := fig.Plot.Save(fig.Width, fig.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if !d.Open {
		return nil
	}

	open := d.Opener
	if open == nil {
		open = OpenInViewer
	}
	if err := open(path); err != nil {
		logger := d.Logger
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("could not open viewer", "path", path, "err", err)
	}
	return nil
}

// OpenInViewer hands path to the desktop's default application.
func OpenInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Run()
}

// Multi shows a figure on each display in turn and stops at the first error.
type Multi []chart.Display

func (m Multi) Show(fig *chart.Figure) error {
	for _, d := range m {
		if err := d.Show(fig); err != nil {
			return err
		}
	}
	return nil
}
