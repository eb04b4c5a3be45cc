package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	orbits "github.com/mrtelecaster/game-orbits"
)

// Prints everything the builtin catalog knows about one body.

const (
	dateFormat = "2006-01-02 15:04:05"
)

var (
	bodyName string
	dateStr  string
)

func init() {
	// Read flags
	flag.StringVar(&bodyName, "body", "Earth", "name of the body to describe")
	flag.StringVar(&dateStr, "date", "", "date of the position query (\"2006-01-02 15:04:05\"), defaults to the J2000 epoch")
}

func main() {
	flag.Parse()
	db := orbits.NewSolarSystem()
	h, entry, err := findBody(db, bodyName)
	if err != nil {
		log.Fatal(err)
	}
	queryDT := orbits.J2000.Time()
	if dateStr != "" {
		queryDT, err = time.Parse(dateFormat, dateStr)
		if err != nil {
			log.Fatalf("could not understand date `%s`: %s", dateStr, err)
		}
	}

	b := entry.Body()
	fmt.Printf("%s (handle %d)\n", entry.Name(), h)
	fmt.Printf("  mass: %.4e kg\tradius: %.1f km\ttilt: %.2f°\n", b.MassKg(), b.RadiusAvg()/1e3, orbits.Rad2deg(b.AxialTilt()))
	if parent, ok := entry.Parent(); ok {
		pe, perr := db.Entry(parent)
		if perr != nil {
			log.Fatal(perr)
		}
		el := entry.Elements()
		fmt.Printf("  orbits %s: %s\n", pe.Name(), el)
		period, perr := db.OrbitalPeriod(h)
		if perr != nil {
			log.Fatal(perr)
		}
		fmt.Printf("  period: %s\n", fmtSeconds(period))
		fmt.Printf("  periapsis: %.0f km (altitude %.0f km)\n", el.Periapsis()/1e3, el.PeriapsisAltitude(pe.Body())/1e3)
		fmt.Printf("  apoapsis: %.0f km (altitude %.0f km)\n", el.Apoapsis()/1e3, el.ApoapsisAltitude(pe.Body())/1e3)
	} else {
		fmt.Printf("  root of the system\n")
	}
	if soi, serr := db.RadiusSOI(h); serr == nil {
		fmt.Printf("  sphere of influence: %.0f km\n", soi/1e3)
	}
	if sats, serr := db.Satellites(h); serr == nil && len(sats) > 0 {
		names := make([]string, 0, len(sats))
		for _, sh := range sats {
			se, serr := db.Entry(sh)
			if serr != nil {
				continue
			}
			names = append(names, se.Name())
		}
		fmt.Printf("  satellites: %s\n", strings.Join(names, ", "))
	}
	r, err := db.PositionAtDate(h, queryDT)
	if err != nil {
		log.Printf("[WARNING] %s", err)
	}
	fmt.Printf("  position on %s: [%.0f %.0f %.0f] km\n", queryDT.Format(dateFormat), r.X/1e3, r.Y/1e3, r.Z/1e3)
}

func findBody(db *orbits.Database, name string) (orbits.Handle, orbits.DatabaseEntry, error) {
	for _, h := range db.Handles() {
		e, err := db.Entry(h)
		if err != nil {
			continue
		}
		if strings.EqualFold(e.Name(), name) {
			return h, e, nil
		}
	}
	return 0, orbits.DatabaseEntry{}, fmt.Errorf("no `%s` in the catalog", name)
}

func fmtSeconds(seconds float64) string {
	const day = 86400.0
	const year = 365.25 * day
	switch {
	case seconds > 2*year:
		return fmt.Sprintf("%.2f years", seconds/year)
	case seconds > 2*day:
		return fmt.Sprintf("%.2f days", seconds/day)
	default:
		return fmt.Sprintf("%.2f hours", seconds/3600)
	}
}
