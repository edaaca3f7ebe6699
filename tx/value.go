// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/micachain/mica/mica"
)

// ValueKind tags the concrete type carried by a Value.
type ValueKind uint8

const (
	// KindUint an unsigned 256-bit integer value.
	KindUint ValueKind = iota
	// KindAddress an account address value.
	KindAddress
)

// Value is a typed argument or event field.
// It's a closed tagged union of uint256 and address.
type Value struct {
	kind ValueKind
	num  uint256.Int
	addr mica.Address
}

// Uint creates a uint256 value.
func Uint(v *uint256.Int) Value {
	val := Value{kind: KindUint}
	if v != nil {
		val.num = *v
	}
	return val
}

// Uint64 creates a uint256 value from a uint64.
func Uint64(v uint64) Value {
	val := Value{kind: KindUint}
	val.num.SetUint64(v)
	return val
}

// Addr creates an address value.
func Addr(a mica.Address) Value {
	return Value{kind: KindAddress, addr: a}
}

// Kind returns the value kind tag.
func (v Value) Kind() ValueKind { return v.kind }

// AsUint returns the numeric content, or false if the value is not a uint.
// The returned integer is a copy.
func (v Value) AsUint() (*uint256.Int, bool) {
	if v.kind != KindUint {
		return nil, false
	}
	return new(uint256.Int).Set(&v.num), true
}

// AsAddress returns the address content, or false if the value is not an address.
func (v Value) AsAddress() (mica.Address, bool) {
	if v.kind != KindAddress {
		return mica.Address{}, false
	}
	return v.addr, true
}

// Equal tests kind and content equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUint:
		return v.num.Eq(&other.num)
	default:
		return v.addr == other.addr
	}
}

// String implements the stringer interface.
func (v Value) String() string {
	switch v.kind {
	case KindUint:
		return v.num.Dec()
	default:
		return v.addr.String()
	}
}

type valueBody struct {
	Kind uint8
	Data []byte
}

// EncodeRLP implements rlp.Encoder.
func (v Value) EncodeRLP(w io.Writer) error {
	var data []byte
	switch v.kind {
	case KindUint:
		data = v.num.Bytes()
	default:
		data = v.addr.Bytes()
	}
	return rlp.Encode(w, &valueBody{uint8(v.kind), data})
}

// DecodeRLP implements rlp.Decoder.
func (v *Value) DecodeRLP(s *rlp.Stream) error {
	var body valueBody
	if err := s.Decode(&body); err != nil {
		return err
	}
	switch ValueKind(body.Kind) {
	case KindUint:
		if len(body.Data) > 32 {
			return errors.New("value: uint data exceeds 32 bytes")
		}
		v.kind = KindUint
		v.num.SetBytes(body.Data)
		v.addr = mica.Address{}
	case KindAddress:
		if len(body.Data) != mica.AddressLength {
			return errors.New("value: bad address length")
		}
		v.kind = KindAddress
		v.num.Clear()
		v.addr = mica.BytesToAddress(body.Data)
	default:
		return errors.Errorf("value: unknown kind %d", body.Kind)
	}
	return nil
}

// EncodeValues encodes a value list for persistence.
func EncodeValues(vals []Value) ([]byte, error) {
	return rlp.EncodeToBytes(vals)
}

// DecodeValues decodes a value list encoded by EncodeValues.
func DecodeValues(data []byte) ([]Value, error) {
	var vals []Value
	if err := rlp.DecodeBytes(data, &vals); err != nil {
		return nil, errors.Wrap(err, "decode values")
	}
	return vals, nil
}
