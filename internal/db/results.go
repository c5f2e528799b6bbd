package db

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"pocketscan/internal/engine"
)

// InsertRun records one detection run and its pockets, returning the
// run row id (0 on failure; archiving is best-effort and never fails
// the detection itself).
func (d *DB) InsertRun(name, strategy string, atomCount int, params engine.Params, res *engine.Result) int64 {
	if res == nil {
		return 0
	}

	paramsJSON, _ := json.Marshal(params)
	out, err := d.sql.Exec(`INSERT INTO runs (
		timestamp, name, strategy, atoms, alpha_spheres, clusters, params
	) VALUES (?,?,?,?,?,?,?)`,
		time.Now().UTC().Format(time.RFC3339), name, strategy, atomCount,
		res.Meta.AlphaSpheres, res.Meta.Clusters, string(paramsJSON),
	)
	if err != nil {
		log.Printf("[DB] InsertRun: %v", err)
		return 0
	}
	runID, _ := out.LastInsertId()

	tx, err := d.sql.Begin()
	if err != nil {
		log.Printf("[DB] InsertRun begin tx: %v", err)
		return runID
	}

	stmt, err := tx.Prepare(`INSERT INTO pockets (
		run_id, pocket_id, center_x, center_y, center_z,
		n_spheres, avg_sphere_radius, volume, residues,
		avg_hydrophobicity, polar_frac, solvent_exposure, druggability
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		log.Printf("[DB] InsertRun prepare: %v", err)
		return runID
	}
	defer stmt.Close()

	for _, p := range res.Pockets {
		stmt.Exec(
			runID, p.ID, p.Center[0], p.Center[1], p.Center[2],
			p.NSpheres, p.AvgSphereRadius, p.Volume, strings.Join(p.Residues, ","),
			p.AvgHydrophobicity, p.PolarFrac, p.SolventExposure, p.Druggability,
		)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[DB] InsertRun commit: %v", err)
	}
	return runID
}

// GetPockets reads back the archived pockets of a run in stored
// (ranked) order.
func (d *DB) GetPockets(runID int64) []engine.Pocket {
	rows, err := d.sql.Query(`
		SELECT pocket_id, center_x, center_y, center_z,
			n_spheres, avg_sphere_radius, volume, residues,
			avg_hydrophobicity, polar_frac, solvent_exposure, druggability
		FROM pockets WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var pockets []engine.Pocket
	for rows.Next() {
		var p engine.Pocket
		var residues string
		rows.Scan(
			&p.ID, &p.Center[0], &p.Center[1], &p.Center[2],
			&p.NSpheres, &p.AvgSphereRadius, &p.Volume, &residues,
			&p.AvgHydrophobicity, &p.PolarFrac, &p.SolventExposure, &p.Druggability,
		)
		if residues != "" {
			p.Residues = strings.Split(residues, ",")
		}
		pockets = append(pockets, p)
	}
	return pockets
}
