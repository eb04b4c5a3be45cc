package main

import (
	"flag"
	"log"
	"strings"
	"time"

	orbits "github.com/mrtelecaster/game-orbits"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// This tool only reads the scenario file and samples the system it describes.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "sampling scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	db := loadSystem()

	// Read sampling parameters
	start := confReadJDEorTime("sampling.start")
	end := confReadJDEorTime("sampling.end")
	step := viper.GetFloat64("sampling.step")
	if verbose {
		log.Printf("[conf] sampling step: %fs\n", step)
	}
	bodies := confBodies()

	conf := orbits.EphemerisConfig{
		Filename:  viper.GetString("export.filename"),
		OutputDir: viper.GetString("export.output_dir"),
		CSV:       viper.GetBool("export.csv"),
		JSON:      viper.GetBool("export.json"),
		Timestamp: viper.GetBool("export.timestamp"),
	}
	if conf.Filename == "" {
		conf.Filename = scenario
	}
	if conf.IsUseless() {
		log.Printf("[WARNING] export disabled, this is a dry run")
	}

	s := orbits.NewSampler(db, bodies, orbits.NewEpoch(start), orbits.NewEpoch(end), step)
	if err := s.Run(conf); err != nil {
		log.Fatalf("sampling failed: %s", err)
	}
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}
