// Package pitches extracts the ordered pitch events from a play's
// detail body.
//
// Each recognizable table row yields one [model.Pitch]: sequence number
// and outcome from the count cell, then pitch type, velocity, strike-zone
// code, baserunner flags, and the fielded-ball location from the fixed
// cell positions that follow. Rows with too few cells are skipped, and a
// missing body simply yields no pitches; nothing here fails the run.
package pitches
