package events

import (
	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/logger"
	"wallet-analyzer/internal/models"
)

// LogEmitter logs every served tool call and forwards to the wrapped
// emitter, if any.
type LogEmitter struct {
	WrappedEmitter interfaces.EventEmitter
}

func (l *LogEmitter) EmitEvent(event models.QueryEvent) error {
	logger.GetLogger().Info().
		Str("tool", event.Tool).
		Str("chain", event.Chain).
		Str("address", event.Address).
		Float64("balance", event.Balance).
		Str("error", event.Error).
		Time("timestamp", event.Timestamp).
		Msg("Tool call served")

	if l.WrappedEmitter != nil {
		return l.WrappedEmitter.EmitEvent(event)
	}
	return nil
}
