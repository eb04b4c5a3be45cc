package orbits

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// EphemCatalog is the root document of a JSON ephemeris export.
type EphemCatalog struct {
	Version string        `json:"version"`
	Name    string        `json:"name"`
	Tracks  []*EphemTrack `json:"tracks"`
}

func (c *EphemCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// EphemTrack holds the sampled positions of a single body. Times are seconds
// past the database epoch, states are [x y z] in meters in the root frame.
type EphemTrack struct {
	Handle Handle      `json:"handle"`
	Name   string      `json:"name"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// EphemerisConfig configures the exporting of sampled ephemerides.
type EphemerisConfig struct {
	Filename  string
	OutputDir string // empty means the configured general.output_dir
	CSV       bool
	JSON      bool
	Timestamp bool // whether to add the creation time to the file names
}

// IsUseless returns whether this config doesn't actually do anything.
func (c EphemerisConfig) IsUseless() bool {
	return !c.CSV && !c.JSON
}

// outputName builds the full path for an export file, stamped if requested.
func (c EphemerisConfig) outputName(ext string) string {
	dir := c.OutputDir
	if dir == "" {
		dir = orbitsConfig().outputDir
	}
	if c.Timestamp {
		t := time.Now()
		return fmt.Sprintf("%s/ephem-%s-%d-%02d-%02dT%02d.%02d.%02d.%s", dir, c.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ext)
	}
	return fmt.Sprintf("%s/ephem-%s.%s", dir, c.Filename, ext)
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf EphemerisConfig, start float64) *os.File {
	f, err := os.Create(conf.outputName("csv"))
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <handle> <name> <t> <jd> <x> <y> <z>
#   t is in seconds past the database epoch
#   Position is in meters in the root frame
#   First sample at t = %f
handle,name,t,jd,x,y,z`, time.Now(), start))
	return f
}

// StreamEphemeris streams the output of the channel to the configured files.
// It returns once the channel closes and everything is flushed, so it is
// normally run from its own goroutine, as Sampler.Run does.
func StreamEphemeris(conf EphemerisConfig, stateChan <-chan EphemerisState) {
	var fCSV *os.File
	tracks := make(map[Handle]*EphemTrack)
	var order []Handle
	started := false
	for state := range stateChan {
		if !started {
			started = true
			if conf.CSV {
				fCSV = createCSVFile(conf, state.T)
			}
		}
		if conf.CSV {
			asTxt := fmt.Sprintf("%d,%s,%f,%f,%f,%f,%f", state.Handle, state.Name, state.T, state.JD, state.R.X, state.R.Y, state.R.Z)
			if _, err := fCSV.WriteString("\n" + asTxt); err != nil {
				panic(err)
			}
		}
		if conf.JSON {
			track, ok := tracks[state.Handle]
			if !ok {
				track = &EphemTrack{Handle: state.Handle, Name: state.Name}
				tracks[state.Handle] = track
				order = append(order, state.Handle)
			}
			track.Times = append(track.Times, state.T)
			track.States = append(track.States, []float64{state.R.X, state.R.Y, state.R.Z})
		}
	}
	// The channel is closed, hence the sampling is over.
	if conf.CSV && fCSV != nil {
		fCSV.WriteString("\n")
		fCSV.Close()
	}
	if conf.JSON && started {
		c := EphemCatalog{Version: "1.0", Name: conf.Filename, Tracks: make([]*EphemTrack, 0, len(order))}
		for _, h := range order {
			c.Tracks = append(c.Tracks, tracks[h])
		}
		fc, err := os.Create(conf.outputName("json"))
		if err != nil {
			panic(err)
		}
		defer fc.Close()
		fmt.Printf("Saving file to %s.\n", fc.Name())
		if marsh, err := json.Marshal(c); err != nil {
			panic(err)
		} else {
			fc.Write(marsh)
		}
	}
}
