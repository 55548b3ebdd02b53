package models

// BowtieRow is one assembled row of a bowtie table: an activity-pressure
// cause chain through the central problem to a consequence, with the
// controls that mediate it. Empty fields mean no link was discovered.
type BowtieRow struct {
	Activity             string `json:"activity" yaml:"activity"`
	Pressure             string `json:"pressure" yaml:"pressure"`
	PreventiveControl    string `json:"preventive_control" yaml:"preventive_control"`
	CentralProblem       string `json:"central_problem" yaml:"central_problem"`
	EscalationFactor     string `json:"escalation_factor" yaml:"escalation_factor"`
	ProtectiveMitigation string `json:"protective_mitigation" yaml:"protective_mitigation"`
	Consequence          string `json:"consequence" yaml:"consequence"`
}
