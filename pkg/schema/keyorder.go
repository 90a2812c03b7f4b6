package schema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	yamlv3 "gopkg.in/yaml.v3"
)

// keyOrder records the order of definitions and of each definition's properties
type keyOrder struct {
	definitions []string
	properties  map[string][]string
}

func newKeyOrder() *keyOrder {
	return &keyOrder{properties: make(map[string][]string)}
}

// keyOrderFromJSON walks the JSON token stream; only definitions and their
// properties objects are recorded, everything else is skipped
func keyOrderFromJSON(data []byte) (*keyOrder, error) {
	order := newKeyOrder()
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if !isDelim(tok, '{') {
		// not an object; decoding reports the missing definitions
		return order, nil
	}

	err = walkObject(dec, func(key string) error {
		if key != "definitions" {
			return skipValue(dec)
		}
		return walkObjectValue(dec, func(defName string) error {
			order.definitions = append(order.definitions, defName)
			return walkObjectValue(dec, func(field string) error {
				if field != "properties" {
					return skipValue(dec)
				}
				order.properties[defName] = []string{}
				return walkObjectValue(dec, func(propName string) error {
					order.properties[defName] = append(order.properties[defName], propName)
					return skipValue(dec)
				})
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// walkObjectValue reads the next value; objects are walked key by key,
// any other value is skipped
func walkObjectValue(dec *json.Decoder, fn func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if !isDelim(tok, '{') {
		return skipFrom(dec, tok)
	}
	return walkObject(dec, fn)
}

// walkObject calls fn for each key of an object whose opening brace was
// already consumed; fn must consume the key's value
func walkObject(dec *json.Decoder, fn func(key string) error) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	// closing brace
	_, err := dec.Token()
	return err
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	return skipFrom(dec, tok)
}

// skipFrom skips the remainder of a value whose first token is tok
func skipFrom(dec *json.Decoder, tok json.Token) error {
	if !isDelim(tok, '{') && !isDelim(tok, '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		next, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := next.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func isDelim(tok json.Token, d json.Delim) bool {
	got, ok := tok.(json.Delim)
	return ok && got == d
}

// keyOrderFromYAML reads the same order information from a YAML node tree
func keyOrderFromYAML(data []byte) (*keyOrder, error) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	order := newKeyOrder()
	doc := &root
	if doc.Kind == yamlv3.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	defs := mappingValue(doc, "definitions")
	if defs == nil {
		return order, nil
	}
	eachMappingPair(defs, func(defName string, def *yamlv3.Node) {
		order.definitions = append(order.definitions, defName)
		props := mappingValue(def, "properties")
		if props == nil {
			return
		}
		order.properties[defName] = []string{}
		eachMappingPair(props, func(propName string, _ *yamlv3.Node) {
			order.properties[defName] = append(order.properties[defName], propName)
		})
	})
	return order, nil
}

func mappingValue(n *yamlv3.Node, key string) *yamlv3.Node {
	var found *yamlv3.Node
	eachMappingPair(n, func(k string, v *yamlv3.Node) {
		if found == nil && k == key {
			found = v
		}
	})
	return found
}

func eachMappingPair(n *yamlv3.Node, fn func(key string, value *yamlv3.Node)) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yamlv3.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, resolveAlias(n.Content[i+1]))
	}
}

func resolveAlias(n *yamlv3.Node) *yamlv3.Node {
	for n != nil && n.Kind == yamlv3.AliasNode {
		n = n.Alias
	}
	return n
}
