// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/kv"
	"github.com/micachain/mica/lvldb"
)

func TestBucket(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	b1 := kv.Bucket("b1-")
	b2 := kv.Bucket("b2-")

	assert.Nil(b1.ProxyPutter(db).Put([]byte("key"), []byte("v1")))
	assert.Nil(b2.ProxyPutter(db).Put([]byte("key"), []byte("v2")))

	v, err := b1.ProxyGetter(db).Get([]byte("key"))
	assert.Nil(err)
	assert.Equal([]byte("v1"), v)

	v, err = b2.ProxyGetter(db).Get([]byte("key"))
	assert.Nil(err)
	assert.Equal([]byte("v2"), v)

	// raw key lives under the prefixed name
	v, err = db.Get([]byte("b1-key"))
	assert.Nil(err)
	assert.Equal([]byte("v1"), v)

	has, err := b1.ProxyGetter(db).Has([]byte("missing"))
	assert.Nil(err)
	assert.False(has)

	assert.Nil(b1.ProxyPutter(db).Delete([]byte("key")))
	_, err = b1.ProxyGetter(db).Get([]byte("key"))
	assert.True(db.IsNotFound(err))
}

func TestBucketIterator(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	b := kv.Bucket("b-")
	putter := b.ProxyPutter(db)
	assert.Nil(putter.Put([]byte("k1"), []byte("v1")))
	assert.Nil(putter.Put([]byte("k2"), []byte("v2")))

	// a key outside the bucket must not leak into iteration
	assert.Nil(db.Put([]byte("other"), []byte("x")))

	iter := b.ProxyGetter(db).NewIterator(kv.Range{})
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Nil(iter.Error())
	assert.Equal([]string{"k1", "k2"}, keys)
}

func TestBucketIteratorPartialRange(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	b := kv.Bucket("b-")
	putter := b.ProxyPutter(db)
	assert.Nil(putter.Put([]byte("k1"), []byte("v1")))
	assert.Nil(putter.Put([]byte("k2"), []byte("v2")))
	assert.Nil(putter.Put([]byte("k3"), []byte("v3")))

	collect := func(r kv.Range) []string {
		iter := b.ProxyGetter(db).NewIterator(r)
		defer iter.Release()
		var keys []string
		for iter.Next() {
			keys = append(keys, string(iter.Key()))
		}
		assert.Nil(iter.Error())
		return keys
	}

	// From set, To empty runs to the end of the bucket
	assert.Equal([]string{"k2", "k3"}, collect(kv.Range{From: []byte("k2")}))
	// To set, From empty starts at the beginning of the bucket
	assert.Equal([]string{"k1"}, collect(kv.Range{To: []byte("k2")}))
	assert.Equal([]string{"k2"}, collect(kv.Range{From: []byte("k2"), To: []byte("k3")}))
}

func TestBucketBatch(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	b := kv.Bucket("b-")
	batch := db.NewBatch()
	putter := b.ProxyPutter(batch)
	assert.Nil(putter.Put([]byte("k1"), []byte("v1")))
	assert.Nil(putter.Put([]byte("k2"), []byte("v2")))
	assert.Equal(2, batch.Len())
	assert.Nil(batch.Write())

	v, err := b.ProxyGetter(db).Get([]byte("k1"))
	assert.Nil(err)
	assert.Equal([]byte("v1"), v)
}
