package main

import "github.com/stackb/scoperank/pkg/procutil"

const (
	SCOPERANK_LOG_LEVEL  = procutil.EnvVar("SCOPERANK_LOG_LEVEL")
	SCOPERANK_LOG_FORMAT = procutil.EnvVar("SCOPERANK_LOG_FORMAT")
	SCOPERANK_PROGRESS   = procutil.EnvVar("SCOPERANK_PROGRESS")
)
