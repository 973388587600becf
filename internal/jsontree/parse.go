package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// Parse decodes a JSON document into a Node tree. Object member order is
// preserved as received, and numbers keep their original literal form
// (json.Number), so the tree is a lossless representation of the input.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidJSON, err)
	}

	// Reject trailing content after the document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after JSON document", apperrors.ErrInvalidJSON)
	}

	return root, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return &Node{Kind: KindString, str: t}, nil
	case json.Number:
		return &Node{Kind: KindNumber, num: t}, nil
	case bool:
		return &Node{Kind: KindBool, b: t}, nil
	case nil:
		return &Node{Kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Node, error) {
	node := &Node{Kind: KindObject}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		child.Key = key
		child.member = true
		child.Index = len(node.Children)
		node.Children = append(node.Children, child)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func parseArray(dec *json.Decoder) (*Node, error) {
	node := &Node{Kind: KindArray}

	for dec.More() {
		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		child.Index = len(node.Children)
		node.Children = append(node.Children, child)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}
