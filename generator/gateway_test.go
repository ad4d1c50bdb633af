package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowGenerator blocks until the call context is cancelled.
type slowGenerator struct{}

func (slowGenerator) wait(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s slowGenerator) Generate(ctx context.Context, prompt, codeContext, model string) (string, error) {
	return "", s.wait(ctx)
}

func (s slowGenerator) Complete(ctx context.Context, partialCode, codeContext, model string) (string, error) {
	return "", s.wait(ctx)
}

func (s slowGenerator) Refactor(ctx context.Context, code, refactorType, model string) (string, error) {
	return "", s.wait(ctx)
}

func (s slowGenerator) ScaffoldProject(ctx context.Context, name, language, framework string) (*ProjectScaffold, error) {
	return nil, s.wait(ctx)
}

func TestGateway_Generate(t *testing.T) {
	g := NewGateway(NewStubGenerator(), time.Second)

	code, err := g.Generate(context.Background(), "fibonacci", "", "")
	require.NoError(t, err)
	assert.Contains(t, code, "fibonacci")
	assert.Contains(t, code, DefaultModel)
}

func TestGateway_Refactor_DefaultType(t *testing.T) {
	g := NewGateway(NewStubGenerator(), time.Second)

	refactored, err := g.Refactor(context.Background(), "func x() {}", "", "")
	require.NoError(t, err)
	assert.Contains(t, refactored, "optimize")
	assert.Contains(t, refactored, "func x() {}")
}

func TestGateway_ScaffoldProject(t *testing.T) {
	g := NewGateway(NewStubGenerator(), time.Second)

	scaffold, err := g.ScaffoldProject(context.Background(), "demo", "python", "flask")
	require.NoError(t, err)
	assert.Equal(t, "demo", scaffold.Name)
	require.NotEmpty(t, scaffold.Files)
	assert.Equal(t, "README.md", scaffold.Files[0].Name)
}

func TestGateway_TimeoutSurfacesUnavailable(t *testing.T) {
	g := NewGateway(slowGenerator{}, 10*time.Millisecond)

	_, err := g.Generate(context.Background(), "anything", "", "")
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)

	_, err = g.Complete(context.Background(), "code", "", "")
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)

	_, err = g.ScaffoldProject(context.Background(), "demo", "go", "")
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
}
