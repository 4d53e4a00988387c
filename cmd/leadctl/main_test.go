package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"migrate"}, {"user", "create"}, {"credits", "grant"}, {"seed", "push"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRequiredFlags(t *testing.T) {
	_, err := execute("user", "create", "--email", "ops@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")

	_, err = execute("credits", "grant", "--credits", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestCreditsGrantRejectsNonPositive(t *testing.T) {
	_, err := execute("credits", "grant", "--email", "ops@example.com", "--credits", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestSeedPushNeedsFile(t *testing.T) {
	_, err := execute("seed", "push")
	assert.Error(t, err)
}

func TestReadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.csv")
	content := "name,industry,location,email,phone\nAcme,SaaS,Berlin,a@acme.io,+49 1\nGlobex,Retail,Paris,g@globex.io,+33 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := readSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	_, err = readSeedFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
