package orbits

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	// An empty directory holds no orbits.toml, so everything falls back.
	cfg := loadConfig(t.TempDir())
	if cfg.outputDir != "./" {
		t.Fatalf("output dir %q", cfg.outputDir)
	}
	if cfg.verbose {
		t.Fatal("verbose by default")
	}
	if cfg.solverTolerance != defaultTolerance {
		t.Fatalf("tolerance %e", cfg.solverTolerance)
	}
	if cfg.solverMaxIter != defaultMaxIterations {
		t.Fatalf("max iterations %d", cfg.solverMaxIter)
	}
	if cfg.solverHalley {
		t.Fatal("Halley by default")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	toml := `[general]
output_dir = "/tmp/ephem"
verbose = true

[solver]
tolerance = 1e-9
max_iterations = 48
halley = true
`
	if err := os.WriteFile(filepath.Join(dir, "orbits.toml"), []byte(toml), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := loadConfig(dir)
	if cfg.outputDir != "/tmp/ephem" {
		t.Fatalf("output dir %q", cfg.outputDir)
	}
	if !cfg.verbose {
		t.Fatal("verbose not picked up")
	}
	if cfg.solverTolerance != 1e-9 {
		t.Fatalf("tolerance %e", cfg.solverTolerance)
	}
	if cfg.solverMaxIter != 48 {
		t.Fatalf("max iterations %d", cfg.solverMaxIter)
	}
	if !cfg.solverHalley {
		t.Fatal("Halley not picked up")
	}
}

func TestConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	toml := `[solver]
halley = true
`
	if err := os.WriteFile(filepath.Join(dir, "orbits.toml"), []byte(toml), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := loadConfig(dir)
	if !cfg.solverHalley {
		t.Fatal("Halley not picked up")
	}
	// Everything the file does not mention keeps its stock value.
	if cfg.solverTolerance != defaultTolerance || cfg.outputDir != "./" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "orbits.toml"), []byte("[general\nbroken"), 0o600); err != nil {
		t.Fatal(err)
	}
	assertPanic(t, func() {
		loadConfig(dir)
	})
}
