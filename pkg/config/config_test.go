package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config lookup at an empty directory and clears
// every assistant variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"ADDRESSBOOK_PATH", "NOTEBOOK_PATH", "FRONTEND", "LOG_DIR", "PROMPT"} {
		name := envPrefix + "_" + key
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.AddressBookPath, cfg.AddressBookPath)
	assert.Equal(t, want.NoteBookPath, cfg.NoteBookPath)
	assert.Equal(t, FrontendAuto, cfg.Frontend)
	assert.Equal(t, "Enter a command: ", cfg.Prompt)
	assert.Empty(t, cfg.LogDir)
	assert.Empty(t, cfg.File)
}

func TestLoadLocalFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "assistant.yaml"), "addressbook_path: data/contacts.yaml\nfrontend: line\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "data/contacts.yaml", cfg.AddressBookPath)
	assert.Equal(t, "notes.yaml", cfg.NoteBookPath)
	assert.Equal(t, FrontendLine, cfg.Frontend)
	assert.Equal(t, filepath.Join(dir, "assistant.yaml"), cfg.File)
}

func TestLoadGlobalFile(t *testing.T) {
	dir := isolate(t)
	xdg := os.Getenv("XDG_CONFIG_HOME")
	writeFile(t, filepath.Join(xdg, "assistant", "config.yaml"), "log_dir: /tmp/assistant-logs\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/assistant-logs", cfg.LogDir)

	// A local file wins over the global one.
	writeFile(t, filepath.Join(dir, "assistant.yaml"), "prompt: '> '\n")
	cfg, err = LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Empty(t, cfg.LogDir)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "assistant.yaml"), "addressbook_path: from-file.yaml\n")
	t.Setenv("ASSISTANT_ADDRESSBOOK_PATH", "from-env.yaml")
	t.Setenv("ASSISTANT_FRONTEND", "TUI")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.AddressBookPath)
	assert.Equal(t, FrontendTUI, cfg.Frontend)
}

func TestDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "ASSISTANT_NOTEBOOK_PATH=dotenv-notes.yaml\n")
	t.Cleanup(func() { os.Unsetenv("ASSISTANT_NOTEBOOK_PATH") })

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-notes.yaml", cfg.NoteBookPath)
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "assistant.yaml"), "frontend: [unterminated\n")

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "tui", mutate: func(c *Config) { c.Frontend = FrontendTUI }},
		{name: "unknown frontend", mutate: func(c *Config) { c.Frontend = "gui" }, wantErr: "frontend"},
		{name: "empty address book path", mutate: func(c *Config) { c.AddressBookPath = " " }, wantErr: "addressbook_path"},
		{name: "empty note book path", mutate: func(c *Config) { c.NoteBookPath = "" }, wantErr: "notebook_path"},
		{name: "same file twice", mutate: func(c *Config) { c.NoteBookPath = "./addressbook.yaml" }, wantErr: "must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
