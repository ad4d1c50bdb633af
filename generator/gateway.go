package generator

import (
	"context"
	"time"
)

const DefaultModel = "qwen2.5-coder:7b"

// Gateway wraps a CodeGenerator with a per-call timeout and folds every
// backend failure into ErrGeneratorUnavailable. It performs no retries and no
// caching; callers decide whether to try again.
type Gateway struct {
	backend CodeGenerator
	timeout time.Duration
}

func NewGateway(backend CodeGenerator, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{backend: backend, timeout: timeout}
}

func (g *Gateway) call(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := fn(ctx)
	if err != nil {
		return "", ErrGeneratorUnavailable
	}
	return result, nil
}

func (g *Gateway) Generate(ctx context.Context, prompt string, codeContext string, model string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	return g.call(ctx, func(ctx context.Context) (string, error) {
		return g.backend.Generate(ctx, prompt, codeContext, model)
	})
}

func (g *Gateway) Complete(ctx context.Context, partialCode string, codeContext string, model string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	return g.call(ctx, func(ctx context.Context) (string, error) {
		return g.backend.Complete(ctx, partialCode, codeContext, model)
	})
}

func (g *Gateway) Refactor(ctx context.Context, code string, refactorType string, model string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	if refactorType == "" {
		refactorType = "optimize"
	}
	return g.call(ctx, func(ctx context.Context) (string, error) {
		return g.backend.Refactor(ctx, code, refactorType, model)
	})
}

func (g *Gateway) ScaffoldProject(ctx context.Context, name string, language string, framework string) (*ProjectScaffold, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	scaffold, err := g.backend.ScaffoldProject(ctx, name, language, framework)
	if err != nil {
		return nil, ErrGeneratorUnavailable
	}
	return scaffold, nil
}
