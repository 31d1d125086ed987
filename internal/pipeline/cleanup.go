package pipeline

import (
	"os"
	"path/filepath"
)

// cleanup removes the given tile files and returns the ones it deleted.
// The input image is never removed, even if it appears in paths. Failures
// are logged and skipped.
func (p *Pipeline) cleanup(paths []string) []string {
	var removed []string
	for _, path := range paths {
		if p.isInput(path) {
			p.logger.Printf("Not removing %s: it is the input image", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			p.logger.Printf("Failed to remove %s: %v", path, err)
			continue
		}
		removed = append(removed, path)
	}
	p.debugf("Removed %d of %d tile files", len(removed), len(paths))
	return removed
}

func (p *Pipeline) isInput(path string) bool {
	if sameFile(path, p.cfg.ImagePath) {
		return true
	}
	a, errA := filepath.Abs(path)
	b, errB := filepath.Abs(p.cfg.ImagePath)
	return errA == nil && errB == nil && a == b
}

func sameFile(a, b string) bool {
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}
