// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mica_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/mica"
)

func TestAddress(t *testing.T) {
	addr := mica.BytesToAddress([]byte("addr"))
	assert.Equal(t, "0x0000000000000000000000000000000061646472", addr.String())
	assert.Equal(t, mica.AddressLength, len(addr.Bytes()))
	assert.False(t, addr.IsZero())
	assert.True(t, mica.Address{}.IsZero())
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"0x0000000000000000000000000000000061646472", true},
		{"0000000000000000000000000000000061646472", true},
		{"0X0000000000000000000000000000000061646472", true},
		{"0x000000000000000000000000000000006164", false},
		{"zz0000000000000000000000000000000061646472", false},
		{"0x00000000000000000000000000000000616464zz", false},
		{"", false},
	}

	for _, test := range tests {
		addr, err := mica.ParseAddress(test.input)
		if test.ok {
			assert.Nil(t, err, test.input)
			assert.Equal(t, "0x0000000000000000000000000000000061646472", addr.String())
		} else {
			assert.Error(t, err, test.input)
		}
	}
}

func TestCreateContractAddress(t *testing.T) {
	creator := mica.BytesToAddress([]byte("creator"))

	a1 := mica.CreateContractAddress(creator, 0)
	a2 := mica.CreateContractAddress(creator, 0)
	assert.Equal(t, a1, a2, "derivation should be deterministic")

	a3 := mica.CreateContractAddress(creator, 1)
	assert.NotEqual(t, a1, a3)
}

func TestAddressJSON(t *testing.T) {
	addr := mica.BytesToAddress([]byte("addr"))

	data, err := json.Marshal(addr)
	assert.Nil(t, err)
	assert.Equal(t, `"0x0000000000000000000000000000000061646472"`, string(data))

	var decoded mica.Address
	assert.Nil(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"0xzz"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`123`), &decoded))
}
