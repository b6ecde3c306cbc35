// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"reflect"

	"github.com/qdm12/gotree"
)

// String returns a multi line tree of the program instructions.
func (x Xcm) String() string {
	return x.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (x Xcm) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Xcm")
	appendInstructions(stringNode, x)
	return stringNode
}

func appendInstructions(parent *gotree.Node, program Xcm) {
	for _, instruction := range program {
		child := parent.Appendf("%s", instructionName(instruction))
		appendInstructions(child, Nested(instruction))
	}
}

func instructionName(instruction Instruction) string {
	return reflect.TypeOf(instruction).Name()
}
