package furnish

import (
	"log/slog"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// Sanitizer prepares the empty shell before furniture is placed
type Sanitizer struct {
	// Pattern is matched case-insensitively against entry names
	Pattern string
	// RotationX in degrees aligns the shell's up axis with the output
	RotationX float64
	Logger    *slog.Logger
}

// NewSanitizer creates a sanitizer
func NewSanitizer(pattern string, rotationX float64, logger *slog.Logger) *Sanitizer {
	return &Sanitizer{Pattern: pattern, RotationX: rotationX, Logger: orDefault(logger)}
}

// Sanitize removes matching entries, then rotates what remains. It returns
// the removed names, empty when nothing matched.
func (s *Sanitizer) Sanitize(sc *scene.Scene) []string {
	removed := s.RemoveMatching(sc)
	sc.ApplyTransform(geometry.RotationX(s.RotationX))
	return removed
}

// RemoveMatching deletes every entry whose name contains Pattern
func (s *Sanitizer) RemoveMatching(sc *scene.Scene) []string {
	pattern := strings.ToLower(s.Pattern)
	removed := make([]string, 0)
	if pattern == "" {
		return removed
	}

	for _, name := range sc.Names() {
		if strings.Contains(strings.ToLower(name), pattern) {
			removed = append(removed, name)
		}
	}
	logger := orDefault(s.Logger)
	for _, name := range removed {
		logger.Info("deleting shell geometry", "name", name)
		sc.Delete(name)
	}

	if len(removed) == 0 {
		logger.Warn("no shell geometry matched", "pattern", s.Pattern)
	}
	return removed
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
