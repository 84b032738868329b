package media

import (
	"github.com/nguyentantai21042004/script-flow/internal/config"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
	"github.com/nguyentantai21042004/script-flow/internal/media/decode"
	"github.com/nguyentantai21042004/script-flow/pkg/executor"
)

type implService struct {
	executor   executor.Executor
	logger     logger.Logger
	binaryPath string
	probePath  string
	ffmpegDec  decode.Decoder
	mp3Dec     decode.Decoder
}

// New creates a media Service backed by the configured ffmpeg tools.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Service {
	return &implService{
		executor:   exec,
		logger:     log,
		binaryPath: cfg.FFmpeg.BinaryPath,
		probePath:  cfg.FFmpeg.ProbePath,
		ffmpegDec:  decode.NewFFmpeg(exec, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath),
		mp3Dec:     decode.NewMP3(),
	}
}
