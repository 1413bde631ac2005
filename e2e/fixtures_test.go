//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type catalogRecord struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// CreateTestWorkspace creates a temporary directory for lyrics and config
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateLyrics writes lyric files under lyrics/ and a database.json
// listing them in the given order. It returns the catalog path.
func (tf *TUITestFramework) CreateLyrics(files map[string]string, order ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	dir := filepath.Join(tf.workspace, "lyrics")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	records := make([]catalogRecord, 0, len(order))
	for _, name := range order {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(files[name]), 0644); err != nil {
			return "", err
		}
		records = append(records, catalogRecord{Filename: name, Path: "lyrics/" + name})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	catalogPath := filepath.Join(tf.workspace, "database.json")
	if err := os.WriteFile(catalogPath, data, 0644); err != nil {
		return "", err
	}
	return catalogPath, nil
}

// WriteConfig writes a config file in the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(body string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	p := filepath.Join(tf.workspace, "config.toml")
	return p, os.WriteFile(p, []byte(body), 0644)
}

// StartWithLyrics sets up the usual two-song workspace and starts the browser
func (tf *TUITestFramework) StartWithLyrics() error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	catalogPath, err := tf.CreateLyrics(map[string]string{
		"Harbor Lights - The Tides.lrc": "[00:01.00]first verse\n[00:05.20]the harbor sleeps\n",
		"Night Drive - Neon Fox.lrc":    "[00:02.00]engine hum\n",
	}, "Harbor Lights - The Tides.lrc", "Night Drive - Neon Fox.lrc")
	if err != nil {
		return err
	}
	configPath, err := tf.WriteConfig("[viewer]\nclipboard = \"osc52\"\ncopy_revert = \"1s\"\n")
	if err != nil {
		return err
	}
	return tf.StartApp(
		"--config", configPath,
		"--log", filepath.Join(tf.workspace, "lyrix.log"),
		"--catalog", catalogPath,
	)
}
