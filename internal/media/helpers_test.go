package media

import (
	"github.com/nguyentantai21042004/script-flow/internal/config"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Paths.Input = "in"
	cfg.Paths.Output = "out"
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func testLogger() logger.Logger {
	return logger.New("error")
}
