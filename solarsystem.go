package orbits

// Handles for the bodies added by AddSolarSystem. The numbering leaves gaps
// behind each giant planet so that more moons can join the catalog later
// without renumbering anything already shipped.
const (
	HandleSol     Handle = 0
	HandleMercury Handle = 1
	HandleVenus   Handle = 2
	HandleEarth   Handle = 3
	HandleLuna    Handle = HandleEarth + 1
	HandleMars    Handle = HandleEarth + 2
	HandlePhobos  Handle = HandleMars + 1
	HandleDeimos  Handle = HandleMars + 2
	HandleJupiter Handle = HandleMars + 3

	HandleIo            Handle = HandleJupiter + 1
	HandleEuropa        Handle = HandleJupiter + 2
	HandleGanymede      Handle = HandleJupiter + 3
	HandleCallisto      Handle = HandleJupiter + 4
	HandleAmalthea      Handle = HandleJupiter + 5
	HandleHimalia       Handle = HandleJupiter + 6
	HandleElara         Handle = HandleJupiter + 7
	HandlePasiphae      Handle = HandleJupiter + 8
	HandleSinope        Handle = HandleJupiter + 9
	HandleLysithea      Handle = HandleJupiter + 10
	HandleCarme         Handle = HandleJupiter + 11
	HandleAnanke        Handle = HandleJupiter + 12
	HandleLeda          Handle = HandleJupiter + 13
	HandleThebe         Handle = HandleJupiter + 14
	HandleAdrastea      Handle = HandleJupiter + 15
	HandleMetis         Handle = HandleJupiter + 16
	HandleCallirhoe     Handle = HandleJupiter + 17
	HandleThemisto      Handle = HandleJupiter + 18
	HandleCarpo         Handle = HandleJupiter + 46
	HandleEirene        Handle = HandleJupiter + 57
	HandlePhilophrosyne Handle = HandleJupiter + 59
	HandleEupheme       Handle = HandleJupiter + 60
	HandleValetudo      Handle = HandleJupiter + 62
	HandlePandia        Handle = HandleJupiter + 65
	HandleErsa          Handle = HandleJupiter + 71
	HandleS2011J1       Handle = HandleJupiter + 72
	HandleSaturn        Handle = HandleJupiter + 97

	HandleMimas     Handle = HandleSaturn + 1
	HandleEnceladus Handle = HandleSaturn + 2
	HandleTethys    Handle = HandleSaturn + 3
	HandleDione     Handle = HandleSaturn + 4
	HandleRhea      Handle = HandleSaturn + 5
	HandleTitan     Handle = HandleSaturn + 6
	HandleHyperion  Handle = HandleSaturn + 7
	HandleIapetus   Handle = HandleSaturn + 8
	HandlePhoebe    Handle = HandleSaturn + 9
	HandleJanus     Handle = HandleSaturn + 10
	HandleGeirrod   Handle = HandleSaturn + 66
	HandleUranus    Handle = HandleSaturn + 148

	HandleAriel   Handle = HandleUranus + 1
	HandleUmbriel Handle = HandleUranus + 2
	HandleTitania Handle = HandleUranus + 3
	HandleOberon  Handle = HandleUranus + 4
	HandleMiranda Handle = HandleUranus + 5
	HandleCupid   Handle = HandleUranus + 27
	HandleNeptune Handle = HandleUranus + 28

	HandleTriton    Handle = HandleNeptune + 1
	HandleNereid    Handle = HandleNeptune + 2
	HandleNaiad     Handle = HandleNeptune + 3
	HandleThalassa  Handle = HandleNeptune + 4
	HandleDespina   Handle = HandleNeptune + 5
	HandleGalatea   Handle = HandleNeptune + 6
	HandleLarissa   Handle = HandleNeptune + 7
	HandleProteus   Handle = HandleNeptune + 8
	HandleHalimede  Handle = HandleNeptune + 9
	HandlePsamathe  Handle = HandleNeptune + 10
	HandleSao       Handle = HandleNeptune + 11
	HandleLaomedeia Handle = HandleNeptune + 12
	HandleNeso      Handle = HandleNeptune + 13
	HandleHippocamp Handle = HandleNeptune + 14
	HandlePluto     Handle = HandleNeptune + 17

	HandleEris     Handle = HandlePluto + 1
	HandleDysnomia Handle = HandleEris + 1
	HandleHaumea   Handle = HandleEris + 2
	HandleHiiaka   Handle = HandleHaumea + 1
	HandleNamaka   Handle = HandleHaumea + 2
)

// NewSolarSystem returns a database populated with the Sun, the planets and a
// selection of moons and dwarf planets.
func NewSolarSystem() *Database {
	db := NewDatabase()
	if err := db.AddSolarSystem(); err != nil {
		panic(err)
	}
	return db
}

// AddSolarSystem populates the database with the bodies of our solar system.
//
// The hard coded sources do not all agree, so the orientation of an orbit and
// the position of the body along it are not necessarily accurate to real
// life, especially for moons of the giant planets. The eccentricities and
// inclinations themselves are authentic.
func (db *Database) AddSolarSystem() error {
	for _, add := range []func() error{
		db.AddSol,
		db.AddMercury,
		db.AddVenus,
		db.AddEarth,
		db.AddMars,
		db.AddJupiter,
		db.AddSaturn,
		db.AddUranus,
		db.AddNeptune,
		db.AddDwarfPlanets,
	} {
		if err := add(); err != nil {
			return err
		}
	}
	return nil
}

// AddSol adds our closest star.
func (db *Database) AddSol() error {
	return db.Add(HandleSol, NewEntry("Sol", NewSol()))
}

// AddMercury adds the planet Mercury.
func (db *Database) AddMercury() error {
	// Mean radius 2439.7 km bumped by half the 0.0009 flattening.
	mercury := NewBody().
		WithMassKg(3.3011e23).
		WithRadiusKm(2439.7 * (1 + 0.0009/2)).
		WithAxialTiltDeg(0.034)
	orbit := NewElements().
		WithSemimajorAxisKm(5.791e7).
		WithEccentricity(0.205630).
		WithInclinationDeg(7.005).
		WithLongOfAscNodeDeg(48.331).
		WithArgOfPeriapsisDeg(29.124).
		WithMeanAnomalyAtEpochDeg(174.796)
	return db.Add(HandleMercury, NewEntry("Mercury", mercury).WithParent(HandleSol, orbit))
}

// AddVenus adds Venus, which is poisonous.
func (db *Database) AddVenus() error {
	venus := NewBody().
		WithMassKg(4.8675e24).
		WithRadiusKm(6051.8).
		WithAxialTiltDeg(177.36)
	orbit := NewElements().
		WithSemimajorAxisKm(1.0821e8).
		WithEccentricity(0.006772).
		WithInclinationDeg(3.39458).
		WithLongOfAscNodeDeg(76.680).
		WithArgOfPeriapsisDeg(54.884).
		WithMeanAnomalyAtEpochDeg(50.115)
	return db.Add(HandleVenus, NewEntry("Venus", venus).WithParent(HandleSol, orbit))
}

// AddEarth adds home, along with its moon.
func (db *Database) AddEarth() error {
	orbit := NewElements().
		WithSemimajorAxisKm(149_598_023).
		WithEccentricity(0.0167086).
		WithInclinationDeg(0.00005).
		WithLongOfAscNodeDeg(-11.26064).
		WithArgOfPeriapsisDeg(114.20783).
		WithMeanAnomalyAtEpochDeg(358.617)
	if err := db.Add(HandleEarth, NewEntry("Earth", NewEarth()).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	luna := NewBody().
		WithMassKg(7.346e22).
		WithRadiusKm(1737.4)
	lunaOrbit := NewElements().
		WithSemimajorAxisKm(384_399).
		WithEccentricity(0.0549).
		WithInclinationDeg(-18.294).
		WithLongOfAscNodeDeg(-11.26064).
		WithArgOfPeriapsisDeg(114.20783).
		WithMeanAnomalyAtEpochDeg(90)
	return db.Add(HandleLuna, NewEntry("Luna", luna).WithParent(HandleEarth, lunaOrbit))
}

// AddMars adds the vacation place, along with its two moons.
func (db *Database) AddMars() error {
	mars := NewBody().
		WithMassKg(6.4171e23).
		WithRadiiKm(3396.2, 3376.2).
		WithAxialTiltDeg(25.19)
	orbit := NewElements().
		WithSemimajorAxisKm(227_939_366).
		WithEccentricity(0.0934).
		WithInclinationDeg(1.850).
		WithLongOfAscNodeDeg(49.57854).
		WithArgOfPeriapsisDeg(286.5).
		WithMeanAnomalyAtEpochDeg(174.796)
	if err := db.Add(HandleMars, NewEntry("Mars", mars).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	return db.addMoons(HandleMars, []moonEntry{
		{HandlePhobos, "Phobos",
			NewBody().WithMassKg(1.060e16).WithRadiusKm(11.08),
			NewElements().WithSemimajorAxisKm(9376).WithEccentricity(0.0151).
				WithInclinationDeg(1.093).WithLongOfAscNodeDeg(83.14323972).
				WithArgOfPeriapsisDeg(381.5236635).WithMeanAnomalyAtEpochDeg(90)},
		{HandleDeimos, "Deimos",
			NewBody().WithMassKg(1.060e16).WithRadiusKm(11.08),
			NewElements().WithSemimajorAxisKm(23463.2).WithEccentricity(0.00033).
				WithInclinationDeg(0.93).WithLongOfAscNodeDeg(80.97357149).
				WithArgOfPeriapsisDeg(386.1935449).WithMeanAnomalyAtEpochDeg(270)},
	})
}

// AddJupiter adds Jupiter, which is big, along with thirteen of its moons.
func (db *Database) AddJupiter() error {
	jupiter := NewBody().
		WithMassKg(1.8982e27).
		WithRadiiKm(71492, 66854).
		WithAxialTiltDeg(3.13)
	orbit := NewElements().
		WithSemimajorAxisAU(5.2038).
		WithEccentricity(0.0489).
		WithInclinationDeg(1.303).
		WithLongOfAscNodeDeg(100.464).
		WithArgOfPeriapsisDeg(273.867).
		WithMeanAnomalyAtEpochDeg(20.020)
	if err := db.Add(HandleJupiter, NewEntry("Jupiter", jupiter).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	return db.addMoons(HandleJupiter, []moonEntry{
		{HandleIo, "Io",
			NewBody().WithMassKg(8.93e22).WithRadiusKm(1821.6),
			NewElements().WithSemimajorAxisM(422025278.692653).WithEccentricity(0.00418867166362767).
				WithInclinationDeg(0.05).WithLongOfAscNodeDeg(737.1542087).
				WithArgOfPeriapsisDeg(654.3518983).WithMeanAnomalyAtEpochDeg(90)},
		{HandleEuropa, "Europa",
			NewBody().WithMassKg(4.8e22).WithRadiusM(1565000),
			NewElements().WithSemimajorAxisM(671193628.654398).WithEccentricity(0.00940288418380329).
				WithInclinationDeg(0.47).WithLongOfAscNodeDeg(350.5260572).
				WithArgOfPeriapsisDeg(468.8993005).WithMeanAnomalyAtEpochDeg(270)},
		{HandleGanymede, "Ganymede",
			NewBody().WithMassKg(1.48e23).WithRadiusKm(2634),
			NewElements().WithSemimajorAxisM(1070615470.44541).WithEccentricity(0.00158762974782861).
				WithInclinationDeg(0.2).WithLongOfAscNodeDeg(341.6959921).
				WithArgOfPeriapsisDeg(621.291691).WithMeanAnomalyAtEpochDeg(270)},
		{HandleCallisto, "Callisto",
			NewBody().WithMassKg(1.075938e23).WithRadiusKm(2_410.3),
			NewElements().WithSemimajorAxisKm(1_882_700).WithEccentricity(0.0074).
				WithInclinationDeg(0.192).WithLongOfAscNodeDeg(339.4829654).
				WithArgOfPeriapsisDeg(698.8083584).WithMeanAnomalyAtEpochDeg(839.9757519)},
		{HandleAmalthea, "Amalthea",
			NewBody().WithMassKg(2.08e18).WithRadiusKm(83.5),
			NewElements().WithSemimajorAxisKm(181365.84).WithEccentricity(0.000441428663648964).
				WithInclinationDeg(0.374).WithLongOfAscNodeDeg(342.032315906764).
				WithArgOfPeriapsisDeg(414.339943282274).WithMeanAnomalyAtEpochDeg(270)},
		{HandleHimalia, "Himalia",
			NewBody().WithMassKg(9.56e18).WithRadiusKm(93.150),
			NewElements().WithSemimajorAxisM(11394679431.4089).WithEccentricity(0.148020288964713).
				WithInclinationDeg(28.1).WithLongOfAscNodeDeg(57.7865255776614).
				WithArgOfPeriapsisDeg(405.592890277337).WithMeanAnomalyAtEpochDeg(270)},
		{HandleElara, "Elara",
			NewBody().WithMassKg(7.77e17).WithRadiusKm(38.500),
			NewElements().WithSemimajorAxisM(11724775187.5364).WithEccentricity(0.196015925266734).
				WithInclinationDeg(27.9).WithLongOfAscNodeDeg(104.680792927026).
				WithArgOfPeriapsisDeg(254.812870711218).WithMeanAnomalyAtEpochDeg(270)},
		{HandlePasiphae, "Pasiphae",
			NewBody().WithMassKg(1.91e17).WithRadiusKm(25.700),
			NewElements().WithSemimajorAxisM(23398199225.7693).WithEccentricity(0.36953258321634).
				WithInclinationDeg(148.4).WithLongOfAscNodeDeg(333.722656460893).
				WithArgOfPeriapsisDeg(529.781057110863).WithMeanAnomalyAtEpochDeg(270)},
		{HandleSinope, "Sinope",
			NewBody().WithMassKg(7.77e16).WithRadiusKm(18.1),
			NewElements().WithSemimajorAxisM(23731586385.2044).WithEccentricity(0.286212248401311).
				WithInclinationDeg(157.3).WithLongOfAscNodeDeg(326.138400070621).
				WithArgOfPeriapsisDeg(330.01471478535).WithMeanAnomalyAtEpochDeg(578.187135014671)},
		{HandleLysithea, "Lysithea",
			NewBody().WithMassKg(7.77e16).WithRadiusKm(18.2),
			NewElements().WithSemimajorAxisM(11681680564.3821).WithEccentricity(0.133982901517185).
				WithInclinationDeg(27.2).WithLongOfAscNodeDeg(1.25211821789787).
				WithArgOfPeriapsisDeg(64.8726214272199).WithMeanAnomalyAtEpochDeg(158.993906489824)},
		{HandleCarme, "Carme",
			NewBody().WithMassKg(9.56e16).WithRadiusKm(39.2),
			NewElements().WithSemimajorAxisM(22846253568.9564).WithEccentricity(0.222748653886903).
				WithInclinationDeg(164.3).WithLongOfAscNodeDeg(143.056427256701).
				WithArgOfPeriapsisDeg(199.239805499578).WithMeanAnomalyAtEpochDeg(545.059221473009)},
		{HandleAnanke, "Ananke",
			NewBody().WithMassKg(3.82e16).WithRadiusKm(14.9),
			NewElements().WithSemimajorAxisM(21178519961.0608).WithEccentricity(0.360749649973783).
				WithInclinationDeg(147.6).WithLongOfAscNodeDeg(39.1941066220987).
				WithArgOfPeriapsisDeg(131.881909593109).WithMeanAnomalyAtEpochDeg(365.178243021899)},
		{HandleLeda, "Leda",
			NewBody().WithMassKg(5.68e15).WithRadiusKm(21.5),
			NewElements().WithSemimajorAxisKm(11_195_980).WithEccentricity(0.360749649973783).
				WithInclinationDeg(28.6).WithLongOfAscNodeDeg(190.18497).
				WithArgOfPeriapsisDeg(312.92965).WithMeanAnomalyAtEpochDeg(137.02571)},
	})
}

// AddSaturn adds Saturn, along with ten of its moons.
func (db *Database) AddSaturn() error {
	saturn := NewBody().
		WithMassKg(5.6834e26).
		WithRadiiKm(60268, 54364).
		WithAxialTiltDeg(26.73)
	orbit := NewElements().
		WithSemimajorAxisAU(9.5826).
		WithEccentricity(0.0565).
		WithInclinationDeg(2.485).
		WithLongOfAscNodeDeg(113.665).
		WithArgOfPeriapsisDeg(339.392).
		WithMeanAnomalyAtEpochDeg(317.020)
	if err := db.Add(HandleSaturn, NewEntry("Saturn", saturn).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	return db.addMoons(HandleSaturn, []moonEntry{
		{HandleMimas, "Mimas",
			NewBody().WithMassKg(3.8e19).WithRadiusKm(196),
			NewElements().WithSemimajorAxisM(186037830.154953).WithEccentricity(0.0215133482144328).
				WithInclinationDeg(1.6).WithLongOfAscNodeDeg(167.3070822).
				WithArgOfPeriapsisDeg(449.3704298).WithMeanAnomalyAtEpochDeg(772.976419)},
		{HandleEnceladus, "Enceladus",
			NewBody().WithMassKg(7.3e19).WithRadiusKm(249),
			NewElements().WithSemimajorAxisM(238408052.167797).WithEccentricity(0.000372459385461708).
				WithInclinationDeg(0).WithLongOfAscNodeDeg(169.5204865).
				WithArgOfPeriapsisDeg(264.6781976).WithMeanAnomalyAtEpochDeg(384.1198896)},
		{HandleTethys, "Tethys",
			NewBody().WithMassKg(6.22e20).WithRadiusKm(530),
			NewElements().WithSemimajorAxisM(294982634.56239).WithEccentricity(0.00107532665445937).
				WithInclinationDeg(1.1).WithLongOfAscNodeDeg(169.1532561).
				WithArgOfPeriapsisDeg(496.8246271).WithMeanAnomalyAtEpochDeg(502.6123366)},
		{HandleDione, "Dione",
			NewBody().WithMassKg(1.05e21).WithRadiusKm(560),
			NewElements().WithSemimajorAxisM(377653774.68302).WithEccentricity(0.00273184023667722).
				WithInclinationDeg(0).WithLongOfAscNodeDeg(169.5723087).
				WithArgOfPeriapsisDeg(5080.2590124).WithMeanAnomalyAtEpochDeg(856.824114)},
		{HandleRhea, "Rhea",
			NewBody().WithMassKg(2.49e21).WithRadiusKm(764),
			NewElements().WithSemimajorAxisM(527225476.502164).WithEccentricity(0.000909561682184622).
				WithInclinationDeg(0.3).WithLongOfAscNodeDeg(168.8079837).
				WithArgOfPeriapsisDeg(360.9692475).WithMeanAnomalyAtEpochDeg(448.7342263)},
		{HandleTitan, "Titan",
			NewBody().WithMassKg(1.35e23).WithRadiusKm(2575),
			NewElements().WithSemimajorAxisM(1221971852.3956).WithEccentricity(0.0286455635677465).
				WithInclinationDeg(0.3).WithLongOfAscNodeDeg(169.1427802).
				WithArgOfPeriapsisDeg(336.2491384).WithMeanAnomalyAtEpochDeg(143.0542442)},
		{HandleHyperion, "Hyperion",
			NewBody().WithMassKg(1.77e19).WithRadiusKm(143),
			NewElements().WithSemimajorAxisM(1447200000).WithEccentricity(0.0757).
				WithInclinationDeg(0.6).WithLongOfAscNodeDeg(168.9).
				WithArgOfPeriapsisDeg(182.895).WithMeanAnomalyAtEpochDeg(301.6)},
		{HandleIapetus, "Iapetus",
			NewBody().WithMassKg(1.6e22).WithRadiusKm(730),
			NewElements().WithSemimajorAxisM(3563513670.80278).WithEccentricity(0.0274067153032204).
				WithInclinationDeg(7.6).WithLongOfAscNodeDeg(139.3182554).
				WithArgOfPeriapsisDeg(369.2974058).WithMeanAnomalyAtEpochDeg(551.098555)},
		{HandlePhoebe, "Phoebe",
			NewBody().WithMassKg(7.8e15).WithRadiusKm(3),
			NewElements().WithSemimajorAxisM(12995759988.095).WithEccentricity(0.0000156144511577606).
				WithInclinationDeg(175.2).WithLongOfAscNodeDeg(208.626701831817).
				WithArgOfPeriapsisDeg(104.242486953736).WithMeanAnomalyAtEpochDeg(108.701283931732)},
		{HandleJanus, "Janus",
			NewBody().WithMassKg(7.0e15).WithRadiusKm(3),
			NewElements().WithSemimajorAxisM(151460988.095).WithEccentricity(0.0000000144511577606).
				WithInclinationDeg(0.2).WithLongOfAscNodeDeg(208.626701831817).
				WithArgOfPeriapsisDeg(104.242486953736).WithMeanAnomalyAtEpochDeg(108.701283931732)},
	})
}

// AddUranus adds Uranus, which rolls on its side, along with five of its
// moons.
func (db *Database) AddUranus() error {
	uranus := NewBody().
		WithMassKg(8.6810e25).
		WithRadiiKm(25559, 24973).
		WithAxialTiltDeg(97.77)
	orbit := NewElements().
		WithSemimajorAxisAU(19.19126).
		WithEccentricity(0.04717).
		WithInclinationDeg(0.773).
		WithLongOfAscNodeDeg(74.006).
		WithArgOfPeriapsisDeg(96.998857).
		WithMeanAnomalyAtEpochDeg(142.238600)
	if err := db.Add(HandleUranus, NewEntry("Uranus", uranus).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	return db.addMoons(HandleUranus, []moonEntry{
		{HandleAriel, "Ariel",
			NewBody().WithMassKg(1.27e21).WithRadiusKm(578.9),
			NewElements().WithSemimajorAxisM(190940711.743871).WithEccentricity(0.00137850353892181).
				WithInclinationDeg(0.0167).WithLongOfAscNodeDeg(167.6951854).
				WithArgOfPeriapsisDeg(236.6892802).WithMeanAnomalyAtEpochDeg(583.1923962)},
		{HandleUmbriel, "Umbriel",
			NewBody().WithMassKg(1.27e21).WithRadiusKm(584.7),
			NewElements().WithSemimajorAxisM(266004056.284577).WithEccentricity(0.00436450298644918).
				WithInclinationDeg(0.0796).WithLongOfAscNodeDeg(167.7113413).
				WithArgOfPeriapsisDeg(521.5502336).WithMeanAnomalyAtEpochDeg(837.2597847)},
		{HandleTitania, "Titania",
			NewBody().WithMassKg(3.49e21).WithRadiusKm(788.9),
			NewElements().WithSemimajorAxisM(436347342.837041).WithEccentricity(0.00275764018002836).
				WithInclinationDeg(0.1129).WithLongOfAscNodeDeg(167.6116584).
				WithArgOfPeriapsisDeg(399.5640193).WithMeanAnomalyAtEpochDeg(496.5752932)},
		{HandleOberon, "Oberon",
			NewBody().WithMassKg(3.03e21).WithRadiusKm(761.4),
			NewElements().WithSemimajorAxisM(583560909.561177).WithEccentricity(0.00110658045344143).
				WithInclinationDeg(0.1478).WithLongOfAscNodeDeg(167.7422432).
				WithArgOfPeriapsisDeg(288.925047).WithMeanAnomalyAtEpochDeg(472.6703921)},
		{HandleMiranda, "Miranda",
			NewBody().WithMassKg(6.33e19).WithRadiusKm(235.800),
			NewElements().WithSemimajorAxisM(129.87e6).WithEccentricity(0.0014).
				WithInclinationDeg(4.4072).WithLongOfAscNodeDeg(163.4949965).
				WithArgOfPeriapsisDeg(242.2809905).WithMeanAnomalyAtEpochDeg(143.0330121)},
	})
}

// AddNeptune adds Neptune, along with seven of its moons.
func (db *Database) AddNeptune() error {
	neptune := NewBody().
		WithMassKg(1.02409e26).
		WithRadiiKm(24764, 24341).
		WithAxialTiltDeg(28.32)
	orbit := NewElements().
		WithSemimajorAxisAU(30.07).
		WithEccentricity(0.008678).
		WithInclinationDeg(1.770).
		WithLongOfAscNodeDeg(131.783).
		WithArgOfPeriapsisDeg(273.187).
		WithMeanAnomalyAtEpochDeg(317.020)
	if err := db.Add(HandleNeptune, NewEntry("Neptune", neptune).WithParent(HandleSol, orbit)); err != nil {
		return err
	}
	return db.addMoons(HandleNeptune, []moonEntry{
		{HandleTriton, "Triton",
			NewBody().WithMassKg(2.14e22).WithRadiusKm(1352.500),
			NewElements().WithSemimajorAxisM(354765668.747018).WithEccentricity(0.0000177503155008841).
				WithInclinationDeg(156.865).WithLongOfAscNodeDeg(217.2530657).
				WithArgOfPeriapsisDeg(521.6797862 - 360).WithMeanAnomalyAtEpochDeg(829.2581612)},
		{HandleNereid, "Nereid",
			NewBody().WithMassKg(1.317e19).WithRadiusKm(165),
			NewElements().WithSemimajorAxisM(5515375933.0092).WithEccentricity(0.747077257017379).
				WithInclinationDeg(5.1).WithLongOfAscNodeDeg(320.104934616101).
				WithArgOfPeriapsisDeg(616.561942032962 - 360).WithMeanAnomalyAtEpochDeg(684.0532414137 - 360)},
		{HandleNaiad, "Naiad",
			NewBody().WithMassKg(5.8e15).WithRadiusKm(2),
			NewElements().WithSemimajorAxisKm(48227784.2).WithEccentricity(0.000000447511577606).
				WithInclinationDeg(4.691).WithLongOfAscNodeDeg(208.626701831817).
				WithArgOfPeriapsisDeg(104.242486953736).WithMeanAnomalyAtEpochDeg(108.701283931732)},
		{HandleThalassa, "Thalassa",
			NewBody().WithMassKg(5.8e15).WithRadiusKm(2),
			NewElements().WithSemimajorAxisKm(50141475.7560609).WithEccentricity(0.001370609133743).
				WithInclinationDeg(0.135).WithLongOfAscNodeDeg(49.1486489463042).
				WithArgOfPeriapsisDeg(178.660268240832).WithMeanAnomalyAtEpochDeg(187.573079498586)},
		{HandleDespina, "Despina",
			NewBody().WithMassKg(2.21e16).WithRadiusKm(12),
			NewElements().WithSemimajorAxisKm(60227784.2).WithEccentricity(0.0000000244511577606).
				WithInclinationDeg(0.068).WithLongOfAscNodeDeg(208.626701831817).
				WithArgOfPeriapsisDeg(104.242486953736).WithMeanAnomalyAtEpochDeg(108.701283931732)},
		{HandleGalatea, "Galatea",
			NewBody().WithMassKg(5.955e16).WithRadiusKm(79.1),
			NewElements().WithSemimajorAxisKm(62097694.895992).WithEccentricity(0.00176342814065272).
				WithInclinationDeg(0.034).WithLongOfAscNodeDeg(48.6938364381423).
				WithArgOfPeriapsisDeg(188.29717200708).WithMeanAnomalyAtEpochDeg(216.667607835566)},
		{HandleLarissa, "Larissa",
			NewBody().WithMassKg(8.563e16).WithRadiusKm(99.96),
			NewElements().WithSemimajorAxisKm(73591064.2683372).WithEccentricity(0.001696576604903).
				WithInclinationDeg(0.205).WithLongOfAscNodeDeg(48.9078558843833).
				WithArgOfPeriapsisDeg(378.844329275267).WithMeanAnomalyAtEpochDeg(428.613425343462)},
	})
}

// AddDwarfPlanets adds Eris and Haumea, along with their moons.
func (db *Database) AddDwarfPlanets() error {
	eris := NewBody().
		WithMassKg(1.638e22).
		WithRadiusKm(1163)
	erisOrbit := NewElements().
		WithSemimajorAxisAU(67.864).
		WithEccentricity(0.43607).
		WithInclinationDeg(44.040).
		WithLongOfAscNodeDeg(35.951).
		WithArgOfPeriapsisDeg(151.639).
		WithMeanAnomalyAtEpochDeg(205.989)
	if err := db.Add(HandleEris, NewEntry("Eris", eris).WithParent(HandleSol, erisOrbit)); err != nil {
		return err
	}
	if err := db.addMoons(HandleEris, []moonEntry{
		{HandleDysnomia, "Dysnomia",
			NewBody().WithMassKg(8.2e19).WithRadiusKm(615.0 / 2),
			NewElements().WithSemimajorAxisKm(37_237).WithEccentricity(0.0062).
				WithInclinationDeg(0).WithLongOfAscNodeDeg(126.17).
				WithArgOfPeriapsisDeg(180.83).WithMeanAnomalyAtEpochDeg(205.989)},
	}); err != nil {
		return err
	}
	haumea := NewBody().
		WithMassKg(4.006e21).
		WithRadiusKm(780)
	haumeaOrbit := NewElements().
		WithSemimajorAxisAU(43.116).
		WithEccentricity(0.19642).
		WithInclinationDeg(28.2137).
		WithLongOfAscNodeDeg(122.167).
		WithArgOfPeriapsisDeg(239.041).
		WithMeanAnomalyAtEpochDeg(218.205)
	if err := db.Add(HandleHaumea, NewEntry("Haumea", haumea).WithParent(HandleSol, haumeaOrbit)); err != nil {
		return err
	}
	return db.addMoons(HandleHaumea, []moonEntry{
		{HandleHiiaka, "Hi'iaka",
			NewBody().WithMassKg(1.79e19).WithRadiusKm(369.0 / 2),
			NewElements().WithSemimajorAxisKm(49_880).WithEccentricity(0.0513).
				WithInclinationDeg(126.356).WithLongOfAscNodeDeg(206.766).
				WithArgOfPeriapsisDeg(154.1).WithMeanAnomalyAtEpochDeg(152.8)},
		{HandleNamaka, "Namaka",
			NewBody().WithMassKg(1.79e18).WithRadiusKm(85),
			NewElements().WithSemimajorAxisKm(25_657).WithEccentricity(0.249).
				WithInclinationDeg(113.013).WithLongOfAscNodeDeg(205.016).
				WithArgOfPeriapsisDeg(178.9).WithMeanAnomalyAtEpochDeg(178.5)},
	})
}

type moonEntry struct {
	h    Handle
	name string
	body Body
	el   OrbitalElements
}

func (db *Database) addMoons(parent Handle, moons []moonEntry) error {
	for _, m := range moons {
		if err := db.Add(m.h, NewEntry(m.name, m.body).WithParent(parent, m.el)); err != nil {
			return err
		}
	}
	return nil
}
