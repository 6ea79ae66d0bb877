// Package config provides default values shared by labd and labctl so the
// client and the server agree on endpoints without further configuration.
package config

const (
	// DefaultServerAddr is where labd listens and labctl connects.
	DefaultServerAddr = "127.0.0.1:8080"

	// DefaultLogLevel is the default log level for all components.
	DefaultLogLevel = "INFO"

	// DefaultLabID is the lab whose form is submitted by default.
	DefaultLabID = 5

	// LabsPath is the endpoint that runs a lab's solver.
	LabsPath = "/labs"

	// LabIDParam is the query parameter naming the lab on LabsPath.
	LabIDParam = "lab_id"

	// DefaultScriptPath is the solver invoked by labd with the lab id as
	// its only argument.
	DefaultScriptPath = "labs/labs.py"
)
