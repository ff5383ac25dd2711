// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert and Delete first place or unlink the node exactly as an
// unbalanced binary search tree would, then walk upwards from the
// point of change adjusting balance factors and rotating until the
// AVL property holds again.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Delete of a node with
// two children swaps node positions with the in-order predecessor
// rather than copying data, so a *Node returned by Search always
// refers to the same key.
package avl
