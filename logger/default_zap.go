//go:build !nozap

package logger

import (
	"go.uber.org/zap"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/backend/zapbackend"
	"github.com/philipp01105/logfacade/config"
)

func init() {
	RegisterBackend(zapbackend.Name, newZapBackend)
}

func newZapBackend(cfg config.Config) (backend.Backend, error) {
	zc := zapbackend.NewConfig()
	if cfg.Zap.Development {
		dev := zap.NewDevelopmentConfig()
		dev.Level = zc.Level
		dev.EncoderConfig.EncodeLevel = zapbackend.LevelEncoder
		zc = dev
	}
	if cfg.Zap.Encoding != "" {
		zc.Encoding = cfg.Zap.Encoding
	}
	if len(cfg.Zap.OutputPaths) > 0 {
		zc.OutputPaths = cfg.Zap.OutputPaths
	}
	if len(cfg.Zap.ErrorOutputPaths) > 0 {
		zc.ErrorOutputPaths = cfg.Zap.ErrorOutputPaths
	}
	return zapbackend.New(zapbackend.Options{
		Config: &zc,
		Level:  cfg.Level,
		Levels: cfg.Levels,
	}), nil
}
