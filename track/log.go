package track

import "go.uber.org/zap"

// LogObserver returns an Observer that records lifecycle events on log.
// Registrations and drops are logged at Debug; leaks at Warn, since an
// obligation still live at table shutdown usually means a missing Drop.
func LogObserver(log *zap.Logger) Observer {
	return &logObserver{log: log}
}

type logObserver struct {
	log *zap.Logger
}

func (o *logObserver) OnTrackEvent(e Event) {
	fields := []zap.Field{
		zap.Uint32("handle", uint32(e.Handle)),
		zap.Uint32("kind", e.Kind),
	}
	switch e.Type {
	case EventRegistered:
		o.log.Debug("obligation registered", fields...)
	case EventDropped:
		o.log.Debug("obligation dropped", fields...)
	case EventLeaked:
		o.log.Warn("obligation leaked at shutdown", fields...)
	}
}
