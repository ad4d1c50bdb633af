package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dreamcatcher/generator"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupDatabase("sqlite", filepath.Join(t.TempDir(), "test.db"), false)
}

func testGateway() *generator.Gateway {
	return generator.NewGateway(generator.NewStubGenerator(), time.Second)
}

func registerTestUser(t *testing.T, db *gorm.DB, username string, email string) *User {
	t.Helper()
	user, err := RegisterUser(db, username, email, []byte("password"))
	require.NoError(t, err)
	return user
}

// failingGenerator errors on every call, for exercising the atomicity path.
type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, prompt, codeContext, model string) (string, error) {
	return "", errors.New("backend down")
}

func (failingGenerator) Complete(ctx context.Context, partialCode, codeContext, model string) (string, error) {
	return "", errors.New("backend down")
}

func (failingGenerator) Refactor(ctx context.Context, code, refactorType, model string) (string, error) {
	return "", errors.New("backend down")
}

func (failingGenerator) ScaffoldProject(ctx context.Context, name, language, framework string) (*generator.ProjectScaffold, error) {
	return nil, errors.New("backend down")
}
