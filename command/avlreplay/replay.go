// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// key type for replayed trees
type stringKey string

func (s stringKey) String() string {
	return string(s)
}

func (s stringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringKey)))
}

// result of one replay
type summary struct {
	Inserted       int     // new keys
	Replaced       int     // inserts that overwrote a value
	Deleted        int     // keys removed
	Missing        int     // deletes of absent keys
	Count          int     // final node count
	Height         int     // final tree height
	Bound          float64 // maximum height allowed for Count nodes
	EqualLeafDepth bool    // all leaves at the same depth
}

// maximum height of an AVL tree holding n nodes
func heightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}

// apply all operations to a fresh tree, checking the tree as configured
func replay(log *logger.L, conf *Configuration, verbose bool, w io.Writer) (*avl.Tree, *summary, error) {
	tree := avl.New()
	s := &summary{}

	log.Infof("replay: %d operations", len(conf.Operations))

	for i, op := range conf.Operations {
		step := i + 1
		key := stringKey(op.Key)

		switch op.Action {
		case actionInsert:
			if tree.Insert(key, op.Value) {
				s.Inserted += 1
			} else {
				s.Replaced += 1
			}
		case actionDelete:
			if nil == tree.Delete(key) {
				s.Missing += 1
			} else {
				s.Deleted += 1
			}
		default:
			return tree, s, fmt.Errorf("%w: step: %d  action: %q", fault.ErrInvalidAction, step, op.Action)
		}

		log.Debugf("step: %d  %s %q  count: %d", step, op.Action, op.Key, tree.Count())
		if verbose {
			fmt.Fprintf(w, "%4d: %-6s %q\n", step, op.Action, op.Key)
		}

		if conf.CheckEveryStep {
			if err := checkTree(tree); nil != err {
				log.Criticalf("step: %d  %s %q  error: %s", step, op.Action, op.Key, err)
				return tree, s, fmt.Errorf("step: %d: %w", step, err)
			}
		}
	}

	if err := checkTree(tree); nil != err {
		log.Criticalf("final tree error: %s", err)
		return tree, s, err
	}

	s.Count = tree.Count()
	s.Height = tree.Height()
	s.Bound = heightBound(s.Count)
	s.EqualLeafDepth = equalpaths.Check(tree.Root(), children)

	log.Infof("replay: inserted: %d  replaced: %d  deleted: %d  missing: %d", s.Inserted, s.Replaced, s.Deleted, s.Missing)
	log.Infof("replay: count: %d  height: %d  bound: %.2f  equal leaf depth: %v", s.Count, s.Height, s.Bound, s.EqualLeafDepth)

	return tree, s, nil
}

// structural checks plus the height bound
func checkTree(tree *avl.Tree) error {
	if err := tree.CheckTree(); nil != err {
		return err
	}
	if h := tree.Height(); float64(h) > heightBound(tree.Count()) {
		return fmt.Errorf("%w: height: %d  count: %d", fault.ErrHeightBound, h, tree.Count())
	}
	return nil
}

func children(n *avl.Node) (*avl.Node, *avl.Node) {
	return n.Left(), n.Right()
}

// write the summary and the optional tree picture
func report(w io.Writer, conf *Configuration, tree *avl.Tree, s *summary) {
	fmt.Fprintf(w, "operations:       %d\n", len(conf.Operations))
	fmt.Fprintf(w, "inserted:         %d\n", s.Inserted)
	fmt.Fprintf(w, "replaced:         %d\n", s.Replaced)
	fmt.Fprintf(w, "deleted:          %d\n", s.Deleted)
	fmt.Fprintf(w, "missing:          %d\n", s.Missing)
	fmt.Fprintf(w, "count:            %d\n", s.Count)
	fmt.Fprintf(w, "height:           %d\n", s.Height)
	fmt.Fprintf(w, "bound:            %.2f\n", s.Bound)
	fmt.Fprintf(w, "equal leaf depth: %v\n", s.EqualLeafDepth)
	if conf.PrintTree {
		fmt.Fprintf(w, "\n")
		tree.Fprint(w, conf.PrintData)
	}
}
