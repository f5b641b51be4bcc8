// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stts converts output of the SMOR morphological analyzer
// into part of speech tags of the Stuttgart-Tübingen tagset.
//
// Example: the analysis line "kommen<+V><1><Pl><Pres><Ind>" with
// the main class "V" maps to "VVFIN".
package stts

import (
	"strings"
)

const (
	capMarker = "<CAP>"
)

// directMap maps SMOR main classes to STTS tags (or to a tag
// prefix refined by a class handler). Classes not listed here
// keep their original name.
var directMap = map[string]string{
	"DEM":      "PD",
	"INDEF":    "PI",
	"POSS":     "PPOS",
	"REL":      "PREL",
	"WPRO":     "PW",
	"PPRO":     "PPER",
	"PREP/ART": "APPRART",
	"PREPART":  "APPRART",
	"PREP":     "APPR",
	"ORD":      "ADJA",
	"POSTP":    "APPO",
	"CIRCP":    "APZR",
	"VPART":    "PTKVZ",
	"VPRE":     "PTKVZ",
	"PROADV":   "PAV",
	"INTJ":     "ITJ",
	"SYMBOL":   "XY",
	"WADV":     "PWAV",
	"CHAR":     "XY",
	"NPROP":    "NE",
}

// Lemma forms identifying auxiliary and modal verbs. SMOR writes
// some of them with the morpheme boundary marker <~>, so both
// spellings are listed. The list is specific to German and
// to SMOR/Morphisto lexicons.
var (
	auxiliaryLemmas = []string{
		"haben", "hab<~>en",
		"werden", "werd<~>en",
		"sein",
	}

	modalLemmas = []string{
		"dürfen", "dürf<~>en",
		"können", "könn<~>en",
		"sollen", "soll<~>en",
		"müssen", "müss<~>en",
		"mögen", "mög<~>en",
		"wollen", "woll<~>en",
	}
)

// Mapping is a result of a conversion of a single analysis
type Mapping struct {

	// Primary is the main tag. It may be empty in case
	// the rules were not able to determine any tag.
	Primary string

	// Secondary is an optional additional tag for analyses
	// ambiguous between two categories.
	Secondary string

	// Unresolved is true if the analysis lacked information
	// needed to produce a complete tag. Primary then contains
	// a coarse fallback.
	Unresolved bool
}

// Tags returns all the non-empty tags of the mapping
func (m Mapping) Tags() []string {
	ans := make([]string, 0, 2)
	if m.Primary != "" {
		ans = append(ans, m.Primary)
	}
	if m.Secondary != "" {
		ans = append(ans, m.Secondary)
	}
	return ans
}

// classHandler refines a tag based on a raw analysis line.
// The tag argument is a result of the directMap lookup.
type classHandler func(tag string, analysis string) Mapping

// handlers selected by the raw SMOR class
var rawClassHandlers = map[string]classHandler{
	"V":    mapVerb,
	"ADJ":  mapAdjective,
	"KONJ": mapConjunction,
	"CONJ": mapConjunction,
	"PTKL": mapParticle,
	"PTCL": mapParticle,
}

// handlers selected by the (already mapped) STTS tag prefix
var tagHandlers = map[string]classHandler{
	"PD":    mapPronoun,
	"PI":    mapPronoun,
	"PP":    mapPronoun,
	"PREL":  mapPronoun,
	"PW":    mapPronoun,
	"PPOS":  mapPronoun,
	"PPER":  mapPersonalPronoun,
	"PUNCT": mapPunctuation,
	"IP":    mapPunctuation,
}

func containsAny(s string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func mapVerb(tag string, analysis string) Mapping {
	lemma := strings.TrimPrefix(analysis, capMarker)
	if hasAnyPrefix(lemma, auxiliaryLemmas) {
		tag += "A"

	} else if hasAnyPrefix(lemma, modalLemmas) {
		tag += "M"

	} else {
		tag += "V"
	}

	switch {
	case strings.Contains(analysis, "<Inf>"):
		if strings.Contains(analysis, "<zu>") {
			return Mapping{Primary: tag + "IZU"}
		}
		return Mapping{Primary: tag + "INF"}
	case strings.Contains(analysis, "<PPast>"):
		return Mapping{Primary: tag + "PP"}
	case containsAny(analysis, "<Ind>", "<Konj>", "<Subj>"):
		return Mapping{Primary: tag + "FIN"}
	case strings.Contains(analysis, "<Imp>"):
		return Mapping{Primary: tag + "IMP"}
	case strings.Contains(analysis, "<PPres>"):
		return Mapping{Primary: "ADJD"}
	}
	return Mapping{Primary: tag, Unresolved: true}
}

func mapAdjective(tag string, analysis string) Mapping {
	if containsAny(analysis, "<Pred>", "<Adv>") {
		return Mapping{Primary: tag + "D"}
	}
	return Mapping{Primary: tag + "A"}
}

func mapPronoun(tag string, analysis string) Mapping {
	isDativeIndef := tag == "PI" && containsAny(analysis, "<mD>", "<Invar>")
	if containsAny(analysis, "<pro>", "<Pro>") {
		if isDativeIndef {
			return Mapping{Primary: tag + "S", Secondary: tag + "DAT"}
		}
		return Mapping{Primary: tag + "S", Secondary: tag + "AT"}

	} else if containsAny(analysis, "<subst>", "<Subst>") {
		return Mapping{Primary: tag + "S"}
	}
	if isDativeIndef {
		return Mapping{Primary: tag + "DAT"}
	}
	return Mapping{Primary: tag + "AT"}
}

func mapConjunction(tag string, analysis string) Mapping {
	switch {
	case containsAny(analysis, "<Vgl>", "<Compar>"):
		return Mapping{Primary: "KOKOM"}
	case strings.Contains(analysis, "<Inf>"):
		return Mapping{Primary: "KOUI"}
	case strings.Contains(analysis, "<Sub>"):
		return Mapping{Primary: "KOUS"}
	case containsAny(analysis, "<Kon>", "<Coord>"):
		return Mapping{Primary: "KON"}
	}
	return Mapping{}
}

func mapParticle(tag string, analysis string) Mapping {
	switch {
	case containsAny(analysis, "<Ant>", "<Ans>"):
		return Mapping{Primary: "PTKANT"}
	case strings.Contains(analysis, "<Neg>"):
		return Mapping{Primary: "PTKNEG"}
	case strings.Contains(analysis, "<zu>"):
		return Mapping{Primary: "PTKZU"}
	case strings.Contains(analysis, "<Adj>"):
		return Mapping{Primary: "PTKA"}
	case strings.Contains(analysis, "<Vz>"):
		return Mapping{Primary: "PTKVZ"}
	}
	return Mapping{Primary: tag}
}

func mapPersonalPronoun(tag string, analysis string) Mapping {
	if containsAny(analysis, "<refl>", "<Refl>") {
		return Mapping{Primary: "PRF"}

	} else if containsAny(analysis, "<prfl>", "<Prfl>") {
		return Mapping{Primary: "PRF", Secondary: "PPER"}
	}
	return Mapping{Primary: tag}
}

func mapPunctuation(tag string, analysis string) Mapping {
	switch {
	case containsAny(analysis, "<Left>", "<Right>", "<links>", "<rechts>"):
		return Mapping{Primary: TagOtherPunct}
	case strings.Contains(analysis, "<Norm>"):
		return Mapping{Primary: TagSentPunct}
	case containsAny(analysis, "<Comma>", "<Komma>"):
		return Mapping{Primary: TagComma}
	}
	return Mapping{Primary: tag}
}

// Map converts a SMOR main class (e.g. "V", "ADJ", "PPRO") found
// in an analysis line into one or two STTS tags.
// The function has no side effects; in case the result is marked
// as Unresolved, it is up to the caller to report it.
func Map(rawClass, analysis string) Mapping {
	tag, ok := directMap[rawClass]
	if !ok {
		tag = rawClass
	}
	if fn, ok := rawClassHandlers[rawClass]; ok {
		return fn(tag, analysis)
	}
	if fn, ok := tagHandlers[tag]; ok {
		return fn(tag, analysis)
	}
	return Mapping{Primary: tag}
}
