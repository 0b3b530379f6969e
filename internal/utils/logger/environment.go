package logger

import "go.uber.org/zap"

func newProductionLoggerConfig() zap.Config {
	return zap.NewProductionConfig()
}

func newStagingLoggerConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg
}

func newDevelopmentLoggerConfig() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg
}

// newTestLoggerConfig discards all output so test runs stay quiet.
func newTestLoggerConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{}
	cfg.ErrorOutputPaths = []string{}
	return cfg
}
