package processor

import (
	"github.com/nguyentantai21042004/script-flow/internal/config"
	"github.com/nguyentantai21042004/script-flow/internal/gemini"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
	"github.com/nguyentantai21042004/script-flow/internal/media"
)

type implProcessor struct {
	cfg    *config.Config
	media  media.Service
	ai     gemini.Client
	logger logger.Logger
}

// New creates a Processor instance
func New(cfg *config.Config, mediaSvc media.Service, ai gemini.Client, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		media:  mediaSvc,
		ai:     ai,
		logger: log,
	}
}
