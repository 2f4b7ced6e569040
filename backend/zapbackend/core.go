package zapbackend

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/backend"
)

// levelCore gates a shared core by the threshold of one logger name.
// It follows the shape of zap's own level-increasing core wrapper.
type levelCore struct {
	zapcore.Core
	name       string
	thresholds *backend.Thresholds[zapcore.Level]
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.thresholds.Enabled(c.name, l) && c.Core.Enabled(l)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), name: c.name, thresholds: c.thresholds}
}

func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	return c.Core.Check(ent, ce)
}
