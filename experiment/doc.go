// Package experiment measures how the restart count of steepest descent
// affects tour quality.
//
// For every restart count R in Config.Restarts, Run solves the same instance
// Config.Trials times with independent derived seeds and summarises the
// resulting lengths (mean, standard deviation, min, max). Reports carry a
// SysInfo stamp describing the host the numbers were taken on.
package experiment
