// Package app is the terminal preview of a record's page: every section is
// rendered with its live carousel or marquee, driven by the bubbletea loop.
package app

import (
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/sections"
)

// TimerMsg carries a scheduler callback onto the Update goroutine.
type TimerMsg func()

// LoadedMsg delivers the result of loading the previewed record.
type LoadedMsg struct {
	Record   content.Record
	Sections []sections.Section
	Err      error
}

