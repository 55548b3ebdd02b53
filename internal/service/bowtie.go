package service

import (
	"sort"

	"github.com/rvisser/bowlink/internal/models"
)

// AssembleBowtie joins the discovered links into bowtie table rows.
// Each Activity->Pressure link produces at least one row; rows expand
// over the Pressure->Consequence links reachable from the pressure,
// and pick up Control links as preventive (on the pressure) or
// protective (on the consequence) mitigations. Fields without a
// discovered link stay empty for the analyst to fill in.
func AssembleBowtie(linkSet models.LinkSet, centralProblem string) []models.BowtieRow {
	pressureConsequences := make(map[string][]models.CandidateLink)
	preventive := make(map[string]string)  // pressure ID -> control name
	protective := make(map[string]string)  // consequence ID -> control name

	for _, l := range linkSet {
		switch {
		case l.FromType == models.CategoryPressure && l.ToType == models.CategoryConsequence:
			pressureConsequences[l.FromID] = append(pressureConsequences[l.FromID], l)
		case l.FromType == models.CategoryControl && l.ToType == models.CategoryPressure:
			if _, ok := preventive[l.ToID]; !ok {
				preventive[l.ToID] = l.FromName
			}
		case l.FromType == models.CategoryControl && l.ToType == models.CategoryConsequence:
			if _, ok := protective[l.ToID]; !ok {
				protective[l.ToID] = l.FromName
			}
		}
	}

	var rows []models.BowtieRow
	for _, l := range linkSet {
		if l.FromType != models.CategoryActivity || l.ToType != models.CategoryPressure {
			continue
		}

		base := models.BowtieRow{
			Activity:          l.FromName,
			Pressure:          l.ToName,
			PreventiveControl: preventive[l.ToID],
			CentralProblem:    centralProblem,
		}

		consequences := pressureConsequences[l.ToID]
		if len(consequences) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, pc := range consequences {
			row := base
			row.Consequence = pc.ToName
			row.ProtectiveMitigation = protective[pc.ToID]
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Activity != rows[j].Activity {
			return rows[i].Activity < rows[j].Activity
		}
		if rows[i].Pressure != rows[j].Pressure {
			return rows[i].Pressure < rows[j].Pressure
		}
		return rows[i].Consequence < rows[j].Consequence
	})
	return rows
}
