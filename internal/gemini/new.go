package gemini

import (
	"sync"

	"github.com/nguyentantai21042004/script-flow/internal/logger"
)

type implClient struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	// One client is shared by concurrent pipeline runs and by the
	// revise/vision pair inside one run; the key index is the only
	// mutable state.
	mu         sync.Mutex
	currentKey int
}

// New creates a Client that rotates through the supplied Gemini API
// keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implClient{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
