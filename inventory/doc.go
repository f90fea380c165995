/*
Package inventory holds the candidate symbols for the three parts of a rime.

A rime (韻) is split into an onset glide (韻頭), a nucleus vowel (韻腹) and
a coda (韻尾). Each part has its own inventory of IPA symbols. Inventories
are ordered: matching is first-alternative-wins, so a symbol has to appear
before every shorter symbol which is a prefix of it. For the onset this
means that combinations like "ʷɯi" come before "ʷɯ", which in turn comes
before "ʷ".

Inventories are read-only. The standard tables are shared process-wide
and must not be modified by clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package inventory

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
