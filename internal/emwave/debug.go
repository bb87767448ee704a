package emwave

import (
	"sync"

	"github.com/lukaszgryglicki/emwave/internal/log"
)

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	log.Debugf(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		log.Debugf(format, args...)
	})
}
