// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/kv"
)

func TestMemDB(t *testing.T) {
	assert := assert.New(t)
	db, err := NewMem()
	assert.Nil(err)
	defer db.Close()

	key := []byte("key")
	value := []byte("value")

	_, err = db.Get(key)
	assert.True(db.IsNotFound(err))

	assert.Nil(db.Put(key, value))

	v, err := db.Get(key)
	assert.Nil(err)
	assert.Equal(value, v)

	has, err := db.Has(key)
	assert.Nil(err)
	assert.True(has)

	assert.Nil(db.Delete(key))
	has, err = db.Has(key)
	assert.Nil(err)
	assert.False(has)
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{}.normalized()
	assert.Equal(t, minCacheSizeMB, o.CacheSize)
	assert.Equal(t, minOpenFilesCacheCap, o.OpenFilesCacheCapacity)

	o = Options{CacheSize: 64, OpenFilesCacheCapacity: 128}.normalized()
	assert.Equal(t, 64, o.CacheSize)
	assert.Equal(t, 128, o.OpenFilesCacheCapacity)
}

func TestBatch(t *testing.T) {
	assert := assert.New(t)
	db, err := NewMem()
	assert.Nil(err)
	defer db.Close()

	batch := db.NewBatch()
	assert.Nil(batch.Put([]byte("k1"), []byte("v1")))
	assert.Nil(batch.Put([]byte("k2"), []byte("v2")))
	assert.Nil(batch.Delete([]byte("k1")))
	assert.Equal(3, batch.Len())

	// nothing visible until write
	has, err := db.Has([]byte("k2"))
	assert.Nil(err)
	assert.False(has)

	assert.Nil(batch.Write())

	_, err = db.Get([]byte("k1"))
	assert.True(db.IsNotFound(err))
	v, err := db.Get([]byte("k2"))
	assert.Nil(err)
	assert.Equal([]byte("v2"), v)
}

func TestIterator(t *testing.T) {
	assert := assert.New(t)
	db, err := NewMem()
	assert.Nil(err)
	defer db.Close()

	assert.Nil(db.Put([]byte("a1"), []byte("1")))
	assert.Nil(db.Put([]byte("a2"), []byte("2")))
	assert.Nil(db.Put([]byte("b1"), []byte("3")))

	iter := db.NewIterator(kv.Range{From: []byte("a"), To: []byte("b")})
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Nil(iter.Error())
	assert.Equal([]string{"a1", "a2"}, keys)
}
