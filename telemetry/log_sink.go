package telemetry

import (
	"github.com/sirupsen/logrus"
)

// LogSink writes every Nth snapshot at debug level.
type LogSink struct {
	Logger *logrus.Logger
	Every  uint64
}

func (l *LogSink) Publish(s Snapshot) {
	if l == nil || l.Logger == nil || !l.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	every := l.Every
	if every == 0 {
		every = 60
	}
	if s.Tick%every != 0 {
		return
	}

	fields := logrus.Fields{
		"tick":    s.Tick,
		"hero_hp": s.HeroHP,
		"mobs":    len(s.Mobs),
		"hero_x":  s.Hero.X,
		"hero_z":  s.Hero.Z,
	}
	if s.Target != nil {
		fields["target"] = s.Target.Name
		fields["target_hp"] = s.Target.HP
	}
	l.Logger.WithFields(fields).Debug("telemetry")
}
