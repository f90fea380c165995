/*
Package rime is about decomposing Middle Chinese rimes.

Description

In traditional Chinese phonology a syllable is split into an initial (聲母)
and a rime (韻). The rime in turn consists of three parts:

  韻頭  onset    an optional glide or cluster, e.g. "i", "ʷɯ"
  韻腹  nucleus  the mandatory syllabic vowel
  韻尾  coda     an optional final consonant or glide, e.g. "ŋ", "p"

Package rime splits a rime, given as a string of IPA symbols, into these
three parts. Splitting is rule based and fully deterministic: it does not
guess and it does not learn.

  parts, err := rime.Decompose("ɯiɛm")
  for _, kind := range rime.Kinds() {
      fmt.Printf("%s：%s\n", kind.Label(), parts.Get(kind))
  }

will print

  韻頭：ɯi
  韻腹：ɛ
  韻尾：m

How it works

Every part of a rime has an inventory of candidate symbols (see sub-package
inventory). The inventories are ordered: longer, more specific symbols are
listed before any shorter symbol which is a prefix of them. From the three
inventories a single grammar is built (see sub-package grammar), with onset
and coda being optional. Matching tries alternatives in order and commits to
the first one that leads to a match. Inventory order is therefore the one and
only means of resolving ambiguities.

A match of the grammar is not enough: a rime is valid only if onset, nucleus
and coda, concatenated, reproduce the input exactly. Inputs with unrecognized
symbols anywhere, including trailing ones, are rejected as a whole with
an error of kind ErrInvalidRimeFormat.

Engines

The default engine uses the regular expression grammar. Sub-package scanner
provides an alternative engine which scans the input rune by rune with a set
of recognizers, one per inventory symbol. Both engines produce identical
results; clients may select one with DecomposeWith.

All functions of this package are free of side effects (apart from tracing)
and safe for concurrent use.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package rime

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
