// Package generator is the seam between the application core and whatever
// produces code. The core only ever talks to the Gateway; the backend behind
// it is swappable.
package generator

import (
	"context"
	"errors"
)

var ErrGeneratorUnavailable = errors.New("code generator unavailable")

type ScaffoldFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type ProjectScaffold struct {
	Name      string         `json:"name"`
	Language  string         `json:"language"`
	Framework string         `json:"framework,omitempty"`
	Files     []ScaffoldFile `json:"files"`
}

// CodeGenerator is the opaque capability a real model backend implements.
type CodeGenerator interface {
	Generate(ctx context.Context, prompt string, codeContext string, model string) (string, error)
	Complete(ctx context.Context, partialCode string, codeContext string, model string) (string, error)
	Refactor(ctx context.Context, code string, refactorType string, model string) (string, error)
	ScaffoldProject(ctx context.Context, name string, language string, framework string) (*ProjectScaffold, error)
}
