package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigLoadFailed(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		parseError error
		expected   []string
	}{
		{
			name:       "yaml syntax error",
			configPath: ".chores.yml",
			parseError: errors.New("yaml: line 3: mapping values are not allowed in this context"),
			expected: []string{
				"failed to load configuration from '.chores.yml'",
				"YAML syntax error",
				"chores init",
				"Original error:",
			},
		},
		{
			name:       "permission denied",
			configPath: "/etc/chores.yml",
			parseError: errors.New("open /etc/chores.yml: permission denied"),
			expected: []string{
				"failed to load configuration from '/etc/chores.yml'",
				"Permission denied reading configuration file",
				"ls -la .chores.yml",
			},
		},
		{
			name:       "other error",
			configPath: ".chores.yml",
			parseError: errors.New("something unexpected"),
			expected: []string{
				"failed to load configuration from '.chores.yml'",
				"Original error: something unexpected",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfigLoadFailed(tt.configPath, tt.parseError)

			assert.Error(t, err)
			for _, expected := range tt.expected {
				assert.Contains(t, err.Error(), expected)
			}
		})
	}
}

func TestConfigAlreadyExists(t *testing.T) {
	err := ConfigAlreadyExists("/project/.chores.yml")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file already exists: /project/.chores.yml")
	assert.Contains(t, err.Error(), "Edit the existing file manually")
}

func TestToolNotFound(t *testing.T) {
	err := ToolNotFound("flake8")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'flake8' is not installed or not on PATH")
	assert.Contains(t, err.Error(), "chores develop")
	assert.Contains(t, err.Error(), "pip install --upgrade flake8")
}

func TestDirectoryAccessFailed(t *testing.T) {
	tests := []struct {
		name          string
		operation     string
		path          string
		originalError error
		expected      []string
	}{
		{
			name:          "permission denied",
			operation:     "access current",
			path:          ".",
			originalError: errors.New("permission denied"),
			expected: []string{
				"failed to access current directory: .",
				"Cause: Permission denied",
				"Check directory permissions",
			},
		},
		{
			name:          "missing directory",
			operation:     "create configuration file in",
			path:          "/missing/dir",
			originalError: errors.New("no such file or directory"),
			expected: []string{
				"failed to create configuration file in directory: /missing/dir",
				"Cause: Directory does not exist",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DirectoryAccessFailed(tt.operation, tt.path, tt.originalError)

			assert.Error(t, err)
			for _, expected := range tt.expected {
				assert.Contains(t, err.Error(), expected)
			}
		})
	}
}
