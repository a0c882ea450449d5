package watchers

import (
	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/rules"
	"go.uber.org/zap"
)

// EventLog mirrors every character event into a logger. Events that close a
// battle or a session are logged at info, everything else at debug.
type EventLog struct {
	logger *zap.Logger
}

// NewEventLog creates an event log writing to logger.
func NewEventLog(logger *zap.Logger) *EventLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventLog{logger: logger.Named("events")}
}

// Handle implements character.Observer.
func (l *EventLog) Handle(subject *character.Character, event rules.EventType, data any) {
	level := zap.DebugLevel
	if event.IsTerminal() {
		level = zap.InfoLevel
	}
	if ce := l.logger.Check(level, string(event)); ce != nil {
		fields := []zap.Field{
			zap.String("id", subject.ID()),
			zap.String("subject", subject.Name()),
			zap.String("kind", subject.Kind().String()),
			zap.Int("health", subject.Health()),
		}
		ce.Write(append(fields, payloadFields(data)...)...)
	}
}

func payloadFields(data any) []zap.Field {
	switch v := data.(type) {
	case nil:
		return nil
	case int:
		return []zap.Field{zap.Int("value", v)}
	case error:
		return []zap.Field{zap.Error(v)}
	case *character.Character:
		return []zap.Field{zap.String("target", v.Name()), zap.String("target_id", v.ID())}
	case *character.Weapon:
		return []zap.Field{zap.String("weapon", v.Name), zap.Int("weapon_damage", v.Damage)}
	case character.AttackData:
		fields := []zap.Field{zap.String("target", v.Target.Name()), zap.String("target_id", v.Target.ID())}
		if v.Weapon != nil {
			fields = append(fields, zap.String("weapon", v.Weapon.Name))
		}
		return fields
	case character.BattleStart:
		fields := []zap.Field{zap.String("battle", v.Kind)}
		if v.Starter != nil {
			fields = append(fields, zap.String("starter", v.Starter.Name()))
		}
		return fields
	default:
		return []zap.Field{zap.Any("data", v)}
	}
}
