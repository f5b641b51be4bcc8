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

package smor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF8CodecIsIdentity(t *testing.T) {
	wc, err := newWireCodec("UTF-8")
	require.NoError(t, err)
	data, err := wc.encode("schön")
	require.NoError(t, err)
	assert.Equal(t, []byte("schön"), data)
}

func TestLatin1Codec(t *testing.T) {
	wc, err := newWireCodec("ISO-8859-1")
	require.NoError(t, err)
	data, err := wc.encode("schön")
	require.NoError(t, err)
	assert.Equal(t, []byte{'s', 'c', 'h', 0xf6, 'n'}, data)
	s, err := wc.decode(data)
	require.NoError(t, err)
	assert.Equal(t, "schön", s)
}

func TestUnknownCodec(t *testing.T) {
	_, err := newWireCodec("foo-encoding-x")
	assert.Error(t, err)
}

func TestCanEncode(t *testing.T) {
	latin1, err := newWireCodec("ISO-8859-1")
	require.NoError(t, err)
	assert.True(t, latin1.canEncode("Straße"))
	assert.False(t, latin1.canEncode("東京"))
	_, err = latin1.encode("東京")
	assert.Error(t, err)

	utf8, err := newWireCodec("UTF-8")
	require.NoError(t, err)
	assert.True(t, utf8.canEncode("東京"))
}
