// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	godsavl "github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/bitmark-inc/avltree/avl"
)

const benchSize = 10000

func benchKeys() []int {
	return rand.New(rand.NewSource(1)).Perm(benchSize)
}

func BenchmarkInsertDelete(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := avl.New()
		for _, k := range keys {
			tree.Insert(intItem(k), k)
		}
		for _, k := range keys {
			tree.Delete(intItem(k))
		}
	}
}

func BenchmarkGodsAVLInsertDelete(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := godsavl.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, k)
		}
		for _, k := range keys {
			tree.Remove(k)
		}
	}
}

func BenchmarkBTreeInsertDelete(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			tree.Delete(k)
		}
	}
}

func BenchmarkLLRBInsertDelete(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		for _, k := range keys {
			tree.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	keys := benchKeys()
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(intItem(k), k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Search(intItem(keys[i%benchSize]))
	}
}

func BenchmarkGodsAVLSearch(b *testing.B) {
	keys := benchKeys()
	tree := godsavl.NewWithIntComparator()
	for _, k := range keys {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Get(keys[i%benchSize])
	}
}

func BenchmarkBTreeSearch(b *testing.B) {
	keys := benchKeys()
	tree := btree.NewOrderedG[int](32)
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Get(keys[i%benchSize])
	}
}

func BenchmarkLLRBSearch(b *testing.B) {
	keys := benchKeys()
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Get(llrb.Int(keys[i%benchSize]))
	}
}

// the in-order index lookup has no equivalent in the other trees
func BenchmarkGet(b *testing.B) {
	tree := avl.New()
	for _, k := range benchKeys() {
		tree.Insert(intItem(k), k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Get(i % benchSize)
	}
}
