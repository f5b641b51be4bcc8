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

package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialUmlaut(t *testing.T) {
	assert.Equal(t, []string{"Äpfel"}, All("Aepfel"))
	assert.Equal(t, []string{"Öl"}, All("Oel"))
	assert.Equal(t, []string{"Übel"}, All("Uebel"))
}

func TestSchoen(t *testing.T) {
	assert.Equal(t, []string{"Schön"}, All("Schoen"))
}

func TestSharpS(t *testing.T) {
	assert.Equal(t, []string{"Straße"}, All("Strasse"))
	assert.Equal(t, []string{"Strasse"}, All("Straße"))
}

func TestEachOccurrenceSeparately(t *testing.T) {
	// each 'ss' occurrence produces its own variant,
	// other occurrences are kept as they are
	assert.Equal(
		t,
		[]string{"Meßkasse", "Messkaße"},
		All("Messkasse"),
	)
	assert.Equal(t, []string{"Fußmass", "Fussmaß"}, All("Fussmass"))
}

func TestMultipleRules(t *testing.T) {
	// prefix first, then ss
	assert.Equal(t, []string{"Äussere", "Aeußere"}, All("Aeussere"))
	// ß, then ue
	assert.Equal(t, []string{"Gruesse", "Grüße"}, All("Grueße"))
	// ae, then oe
	assert.Equal(t, []string{"Märchenoel", "Maerchenöl"}, All("Maerchenoel"))
}

func TestNoVariants(t *testing.T) {
	assert.Empty(t, All("Haus"))
	assert.Empty(t, All(""))
}

func TestNeverContainsWordItself(t *testing.T) {
	words := []string{"Schoen", "Strasse", "Straße", "Muesse", "Aeoeue", "aeaeae", "ssss", "Oese"}
	for _, w := range words {
		for v := range Of(w) {
			assert.NotEqual(t, w, v)
		}
	}
}

func TestRestartable(t *testing.T) {
	seq := Of("Muessen")
	first := make([]string, 0)
	for v := range seq {
		first = append(first, v)
	}
	second := make([]string, 0)
	for v := range seq {
		second = append(second, v)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Mueßen", "Müssen"}, first)
}

func TestEarlyStop(t *testing.T) {
	var ans []string
	for v := range Of("Muessen") {
		ans = append(ans, v)
		break
	}
	assert.Equal(t, []string{"Mueßen"}, ans)
}
