package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	out, err := e.run(ctx, nil, name, args...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ExecuteBytes runs an external command and returns raw stdout bytes
func (e *implExecutor) ExecuteBytes(ctx context.Context, name string, args ...string) ([]byte, error) {
	return e.run(ctx, nil, name, args...)
}

// ExecuteInput runs an external command with input piped to stdin
func (e *implExecutor) ExecuteInput(ctx context.Context, input []byte, name string, args ...string) ([]byte, error) {
	return e.run(ctx, input, name, args...)
}

func (e *implExecutor) run(ctx context.Context, input []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return nil, fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return nil, fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.Bytes(), nil
}
