package generator

import (
	"context"
	"fmt"
)

// StubGenerator is the development backend. It answers every request with a
// deterministic template so the rest of the system can be exercised without a
// model endpoint configured.
type StubGenerator struct{}

func NewStubGenerator() *StubGenerator {
	return &StubGenerator{}
}

func (s *StubGenerator) Generate(ctx context.Context, prompt string, codeContext string, model string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("// Generated for: %s\n// Context: %s\n// Model: %s\n\nfunc generated() string {\n\treturn \"Hello from Dreamcatcher!\"\n}\n", prompt, codeContext, model), nil
}

func (s *StubGenerator) Complete(ctx context.Context, partialCode string, codeContext string, model string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "\t// completed\n\treturn \"Code completed by Dreamcatcher!\"\n", nil
}

func (s *StubGenerator) Refactor(ctx context.Context, code string, refactorType string, model string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("// Refactored (%s)\n%s\n// Optimized by Dreamcatcher\n", refactorType, code), nil
}

func (s *StubGenerator) ScaffoldProject(ctx context.Context, name string, language string, framework string) (*ProjectScaffold, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mainFile := "index.js"
	depsFile := "package.json"
	if language == "python" {
		mainFile = "main.py"
		depsFile = "requirements.txt"
	} else if language == "go" {
		mainFile = "main.go"
		depsFile = "go.mod"
	}

	return &ProjectScaffold{
		Name:      name,
		Language:  language,
		Framework: framework,
		Files: []ScaffoldFile{
			{Name: "README.md", Content: fmt.Sprintf("# %s\n\nGenerated by Dreamcatcher\n", name)},
			{Name: mainFile, Content: "// Main application file\n"},
			{Name: depsFile, Content: "// Dependencies\n"},
		},
	}, nil
}
