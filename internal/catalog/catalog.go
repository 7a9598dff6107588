package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Program describes one downloadable program.
type Program struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
	File        string `toml:"file"`
}

// MatchKey returns the lowercase name used for filtering.
func (p Program) MatchKey() string {
	return strings.ToLower(p.Name)
}

// Default returns the built-in program table.
func Default() []Program {
	return []Program{
		{
			Name:        "Total Installer",
			Description: "Complete installer from strombackfamily.com",
			Icon:        "assets/images/total_installer.png",
			File:        "assets/downloads/total_installer.exe",
		},
	}
}

// Load reads a catalog file, falling back to Default when path is empty or
// the file does not exist.
func Load(path string) ([]Program, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode parses a TOML catalog. Entries keep file order; icon and file paths
// are taken verbatim.
func Decode(r io.Reader) ([]Program, error) {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Programs []Program `toml:"program"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if raw.Programs == nil {
		return []Program{}, nil
	}
	return raw.Programs, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
