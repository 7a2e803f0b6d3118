package domain

import (
	"maps"
	"strings"
)

// Script is a unit of work for the shell runner: a block of shell text, an
// optional working-directory override, and environment variables merged into
// the child process's inherited environment.
//
// A Script is a value. The With* methods return copies, so a base script can
// be specialized per architecture without aliasing surprises.
type Script struct {
	content    string
	workingDir string
	env        map[string]string
}

// NewScript creates a Script from the given body. Leading and trailing
// whitespace is trimmed at construction.
func NewScript(content string) Script {
	return Script{content: strings.TrimSpace(content)}
}

// WithWorkingDir returns a copy of the script with the working-directory
// override set.
func (s Script) WithWorkingDir(dir string) Script {
	out := s.clone()
	out.workingDir = dir
	return out
}

// WithEnv returns a copy of the script with the variable added to its
// environment map.
func (s Script) WithEnv(key, value string) Script {
	out := s.clone()
	if out.env == nil {
		out.env = make(map[string]string, 1)
	}
	out.env[key] = value
	return out
}

// Content returns the trimmed script body.
func (s Script) Content() string {
	return s.content
}

// WorkingDir returns the working-directory override, or "" when the runner
// should use its own scratch directory.
func (s Script) WorkingDir() string {
	return s.workingDir
}

// Env returns a copy of the script's environment variables.
func (s Script) Env() map[string]string {
	if s.env == nil {
		return nil
	}
	return maps.Clone(s.env)
}

func (s Script) clone() Script {
	return Script{
		content:    s.content,
		workingDir: s.workingDir,
		env:        maps.Clone(s.env),
	}
}
