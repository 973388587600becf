package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the JSON value a Node represents.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the lowercase JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Node is one value in a parsed JSON document. Objects and arrays carry
// children in the order they appeared on the wire; scalars carry a value.
// JSON is tree-shaped by construction, so the structure is acyclic and
// recursion over it is total.
type Node struct {
	Kind     Kind
	Key      string // object member key; meaningful only when member is set
	Index    int    // position within the parent's children
	Children []*Node

	member bool // object member, as opposed to array element or root
	str    string
	num    json.Number
	b      bool
}

// IsBranch reports whether the node can have children.
func (n *Node) IsBranch() bool {
	return n.Kind == KindObject || n.Kind == KindArray
}

// Label returns the display label relative to the parent: the member key
// inside objects, "[i]" inside arrays. The empty string is a legal member
// key, so membership is tracked explicitly rather than inferred from Key.
func (n *Node) Label() string {
	if n.member {
		return n.Key
	}
	return "[" + strconv.Itoa(n.Index) + "]"
}

// ValueString returns the scalar display text. Branch nodes return a
// summary like "{3}" or "[2]" with their child count.
func (n *Node) ValueString() string {
	switch n.Kind {
	case KindString:
		return n.str
	case KindNumber:
		return n.num.String()
	case KindBool:
		return strconv.FormatBool(n.b)
	case KindNull:
		return "null"
	case KindObject:
		return fmt.Sprintf("{%d}", len(n.Children))
	case KindArray:
		return fmt.Sprintf("[%d]", len(n.Children))
	default:
		return ""
	}
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Reconstruct serializes the node back to JSON, preserving the key order
// captured at parse time. Parse followed by Reconstruct is lossless up to
// whitespace.
func (n *Node) Reconstruct() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) appendJSON(buf *bytes.Buffer) error {
	switch n.Kind {
	case KindObject:
		buf.WriteByte('{')
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(child.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := child.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case KindArray:
		buf.WriteByte('[')
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := child.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case KindString:
		s, err := json.Marshal(n.str)
		if err != nil {
			return err
		}
		buf.Write(s)

	case KindNumber:
		buf.WriteString(n.num.String())

	case KindBool:
		buf.WriteString(strconv.FormatBool(n.b))

	case KindNull:
		buf.WriteString("null")
	}
	return nil
}
