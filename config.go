package orbits

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _orbitsconfig{}
)

// _orbitsconfig is a "hidden" struct, just use `orbitsConfig`
type _orbitsconfig struct {
	outputDir       string
	verbose         bool
	solverTolerance float64
	solverMaxIter   int
	solverHalley    bool
}

// loadConfig reads orbits.toml from the given directory. Every key is
// optional and falls back to its stock value, so running without any
// configuration file at all is fully supported.
func loadConfig(confPath string) _orbitsconfig {
	v := viper.New()
	v.SetConfigName("orbits")
	v.AddConfigPath(confPath)
	v.SetDefault("general.output_dir", "./")
	v.SetDefault("general.verbose", false)
	v.SetDefault("solver.tolerance", defaultTolerance)
	v.SetDefault("solver.max_iterations", defaultMaxIterations)
	v.SetDefault("solver.halley", false)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("could not read %s/orbits.toml: %s", confPath, err))
		}
	}
	return _orbitsconfig{
		outputDir:       v.GetString("general.output_dir"),
		verbose:         v.GetBool("general.verbose"),
		solverTolerance: v.GetFloat64("solver.tolerance"),
		solverMaxIter:   v.GetInt("solver.max_iterations"),
		solverHalley:    v.GetBool("solver.halley"),
	}
}

// orbitsConfig returns the orbits configuration, loaded on first use from the
// directory named by the ORBITS_CONFIG environment variable, or from the
// working directory when that variable is unset.
func orbitsConfig() _orbitsconfig {
	cfgOnce.Do(func() {
		confPath := os.Getenv("ORBITS_CONFIG")
		if confPath == "" {
			confPath = "."
		}
		config = loadConfig(confPath)
	})
	return config
}
