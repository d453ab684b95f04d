package settings

import "log"

func logf(format string, args ...any) {
	log.Printf("[settings] "+format, args...)
}
