package export

import (
	"circlecalc/internal/logging"
	"circlecalc/internal/model"
)

// CSVRecorder returns a callback that appends each entry to the CSV tape at
// path, creating parent directories as needed. Write failures are logged and
// do not interrupt the calculator.
func CSVRecorder(path string) func(model.Entry) {
	return func(e model.Entry) {
		if err := EnsureDir(path); err != nil {
			logging.Errorf("create tape directory: %v", err)
			return
		}
		if err := WriteCSV(path, []model.Entry{e}); err != nil {
			logging.Errorf("append tape: %v", err)
			return
		}
		logging.Debugf("tape: %s appended to %s", e.Line(), path)
	}
}
