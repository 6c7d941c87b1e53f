package delaunay

import (
	"fmt"
	"log"
)

// BuildContext accumulates progress messages during a build when verbose
// logging is requested; it is a no-op sink otherwise. Modeled on the
// teacher's recast.BuildContext / recast.Context split between a logging
// build context and a silent default.
type BuildContext struct {
	verbose bool
	log     []string
}

// NewBuildContext returns a BuildContext that records messages only when
// verbose is true.
func NewBuildContext(verbose bool) *BuildContext {
	return &BuildContext{verbose: verbose}
}

// Logf records a formatted progress message if verbose logging is enabled.
func (c *BuildContext) Logf(format string, args ...interface{}) {
	if c == nil || !c.verbose {
		return
	}
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

// DumpLog writes every recorded message to the standard logger, prefixed
// by header.
func (c *BuildContext) DumpLog(header string) {
	if c == nil || !c.verbose {
		return
	}
	log.Println(header)
	for _, line := range c.log {
		log.Println(line)
	}
}
