package export

import (
	"fmt"
	"os"
	"strings"

	"circlecalc/internal/model"
)

// WriteTXT writes tape entries to a text file, one "expression = result"
// line per entry prefixed with its time.
func WriteTXT(path string, entries []model.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Timestamp.Format("2006-01-02 15:04:05"))
		b.WriteString("  ")
		b.WriteString(e.Line())
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
