// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as text files and embedded at compile time.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.txt
var promptFiles embed.FS

// cache stores loaded prompt files to avoid repeated reads
var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by filename (e.g., "analyze.txt").
// Returns an error if the file is not found.
func Get(filename string) (string, error) {
	cacheMu.RLock()
	if prompt, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return prompt, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	prompt := string(data)

	cacheMu.Lock()
	cache[filename] = prompt
	cacheMu.Unlock()

	return prompt, nil
}

// MustGet retrieves a prompt template by filename, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename string) string {
	prompt, err := Get(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
