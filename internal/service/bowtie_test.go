package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvisser/bowlink/internal/models"
)

func bowtieLink(fromID, fromName string, fromType models.Category, toID, toName string, toType models.Category) models.CandidateLink {
	return models.CandidateLink{
		FromID: fromID, FromName: fromName, FromType: fromType,
		ToID: toID, ToName: toName, ToType: toType,
		Score: 0.7, Method: "keyword_water",
	}
}

func TestAssembleBowtie(t *testing.T) {
	linkSet := models.LinkSet{
		bowtieLink("act-1", "Dredging", models.CategoryActivity, "pre-1", "Turbidity", models.CategoryPressure),
		bowtieLink("pre-1", "Turbidity", models.CategoryPressure, "con-1", "Seagrass loss", models.CategoryConsequence),
		bowtieLink("ctl-1", "Dredging permits", models.CategoryControl, "pre-1", "Turbidity", models.CategoryPressure),
		bowtieLink("ctl-2", "Replanting program", models.CategoryControl, "con-1", "Seagrass loss", models.CategoryConsequence),
	}

	rows := AssembleBowtie(linkSet, "Poor water clarity")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Dredging", row.Activity)
	assert.Equal(t, "Turbidity", row.Pressure)
	assert.Equal(t, "Dredging permits", row.PreventiveControl)
	assert.Equal(t, "Poor water clarity", row.CentralProblem)
	assert.Equal(t, "Replanting program", row.ProtectiveMitigation)
	assert.Equal(t, "Seagrass loss", row.Consequence)
}

func TestAssembleBowtieExpandsConsequences(t *testing.T) {
	linkSet := models.LinkSet{
		bowtieLink("act-1", "Dredging", models.CategoryActivity, "pre-1", "Turbidity", models.CategoryPressure),
		bowtieLink("pre-1", "Turbidity", models.CategoryPressure, "con-1", "Seagrass loss", models.CategoryConsequence),
		bowtieLink("pre-1", "Turbidity", models.CategoryPressure, "con-2", "Fishery decline", models.CategoryConsequence),
	}

	rows := AssembleBowtie(linkSet, "Poor water clarity")
	require.Len(t, rows, 2)
	assert.Equal(t, "Fishery decline", rows[0].Consequence)
	assert.Equal(t, "Seagrass loss", rows[1].Consequence)
	// No control links: fields stay empty for the analyst.
	assert.Empty(t, rows[0].PreventiveControl)
	assert.Empty(t, rows[0].ProtectiveMitigation)
}

func TestAssembleBowtiePressureWithoutConsequence(t *testing.T) {
	linkSet := models.LinkSet{
		bowtieLink("act-1", "Dredging", models.CategoryActivity, "pre-1", "Turbidity", models.CategoryPressure),
	}

	rows := AssembleBowtie(linkSet, "Poor water clarity")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dredging", rows[0].Activity)
	assert.Empty(t, rows[0].Consequence)
}

func TestAssembleBowtieNoActivityLinks(t *testing.T) {
	linkSet := models.LinkSet{
		bowtieLink("pre-1", "Turbidity", models.CategoryPressure, "con-1", "Seagrass loss", models.CategoryConsequence),
	}
	assert.Empty(t, AssembleBowtie(linkSet, "Poor water clarity"))
	assert.Empty(t, AssembleBowtie(nil, "Poor water clarity"))
}
