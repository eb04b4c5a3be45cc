package main

import (
	"fmt"
	"log"

	orbits "github.com/mrtelecaster/game-orbits"
	"github.com/spf13/viper"
)

// loadSystem builds the database the scenario describes: either a builtin
// system, or the custom bodies listed in the file. Bodies must be listed
// parents first, as in:
//
//	[bodies.0]
//	handle = 0
//	name = "Star"
//	mass = 1.9885e30
//	radius = 695700
//
//	[bodies.1]
//	handle = 1
//	name = "Planet"
//	mass = 5.9e24
//	radius = 6371
//	parent = 0
//	sma = 1.496e8
//	ecc = 0.0167
func loadSystem() *orbits.Database {
	db := orbits.NewDatabase()
	if epoch := viper.GetFloat64("system.epoch"); epoch > 0 {
		db.SetEpoch(orbits.NewEpochJD(epoch))
	}
	if builtin := viper.GetString("system.builtin"); builtin != "" {
		switch builtin {
		case "solarsystem":
			if err := db.AddSolarSystem(); err != nil {
				log.Fatalf("could not load builtin `%s`: %s", builtin, err)
			}
		default:
			log.Fatalf("unknown builtin system `%s`", builtin)
		}
		return db
	}
	for no := 0; viper.IsSet(fmt.Sprintf("bodies.%d", no)); no++ {
		pre := fmt.Sprintf("bodies.%d.", no)
		name := viper.GetString(pre + "name")
		body := orbits.NewBody().
			WithMassKg(viper.GetFloat64(pre + "mass")).
			WithRadiusKm(viper.GetFloat64(pre + "radius"))
		if tilt := viper.GetFloat64(pre + "tilt"); tilt != 0 {
			body = body.WithAxialTiltDeg(tilt)
		}
		entry := orbits.NewEntry(name, body)
		if viper.IsSet(pre + "parent") {
			el := orbits.NewElements().
				WithSemimajorAxisKm(viper.GetFloat64(pre + "sma")).
				WithEccentricity(viper.GetFloat64(pre + "ecc")).
				WithInclinationDeg(viper.GetFloat64(pre + "inc")).
				WithLongOfAscNodeDeg(viper.GetFloat64(pre + "RAAN")).
				WithArgOfPeriapsisDeg(viper.GetFloat64(pre + "argPeri")).
				WithMeanAnomalyAtEpochDeg(viper.GetFloat64(pre + "meanAnom"))
			entry = entry.WithParent(orbits.Handle(viper.GetUint32(pre+"parent")), el)
		}
		if err := db.Add(orbits.Handle(viper.GetUint32(pre+"handle")), entry); err != nil {
			log.Fatalf("could not add body `%s`: %s", name, err)
		}
		if verbose {
			log.Printf("[conf] added body `%s`", name)
		}
	}
	if db.Len() == 0 {
		log.Fatal("scenario declares no system")
	}
	return db
}

// confBodies resolves which bodies to sample. An empty or missing list means
// all of them.
func confBodies() []orbits.Handle {
	raw := viper.GetIntSlice("sampling.bodies")
	if len(raw) == 0 {
		return nil
	}
	bodies := make([]orbits.Handle, 0, len(raw))
	for _, v := range raw {
		bodies = append(bodies, orbits.Handle(v))
	}
	return bodies
}
