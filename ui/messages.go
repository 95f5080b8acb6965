package ui

import "github.com/jcubic/atm/banner"

// generatedMsg delivers a finished generation request to the update loop.
// The request carries its generation token, so the controller can drop
// results that were superseded while the generator was running.
type generatedMsg struct {
	req banner.Request
	art string
	err error
}
