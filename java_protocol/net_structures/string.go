package net_structures

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// String is a UTF-8 encoded string with a VarInt length prefix (byte count).
//
// The length prefix indicates the number of bytes, not characters.
// Maximum length is 32767 characters (which can be up to ~130KB in UTF-8).
type String string

// Encode writes the String to w with VarInt length prefix.
func (v String) Encode(w io.Writer) error {
	data := []byte(v)
	if err := VarInt(len(data)).Encode(w); err != nil {
		return fmt.Errorf("failed to write string length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write string data: %w", err)
	}
	return nil
}

// DecodeString reads a String from r.
// maxLen is the maximum allowed string length in characters (0 = no limit).
func DecodeString(r io.Reader, maxLen int) (String, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return "", fmt.Errorf("failed to read string length: %w", err)
	}

	if length < 0 {
		return "", fmt.Errorf("negative string length: %d", length)
	}

	// Minecraft strings can have at most 3 bytes per character (UTF-8)
	// Plus some buffer for edge cases
	maxBytes := maxLen * 4
	if maxLen > 0 && int(length) > maxBytes {
		return "", fmt.Errorf("string byte length %d exceeds maximum %d", length, maxBytes)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", fmt.Errorf("failed to read string data: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("string data is not valid UTF-8")
	}

	s := string(data)
	if maxLen > 0 && len([]rune(s)) > maxLen {
		return "", fmt.Errorf("string length %d exceeds maximum %d characters", len([]rune(s)), maxLen)
	}

	return String(s), nil
}

// Identifier is a namespaced location string, "namespace:path".
//
// Both namespace and path are restricted to the character class [a-z0-9._-];
// path additionally allows '/'. There is no default namespace: a missing
// colon, or any character outside the allowed class, is a parse failure.
//
// Examples:
//
//	"minecraft:stone"
//	"minecraft:textures/block/stone.png"
//	"custom:my_item"
type Identifier string

func isNamespaceChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.'
}

func isPathChar(c rune) bool {
	return isNamespaceChar(c) || c == '/'
}

// NewIdentifier validates and constructs an Identifier from namespace and path parts.
func NewIdentifier(namespace, path string) (Identifier, error) {
	if namespace == "" {
		return "", fmt.Errorf("identifier: empty namespace")
	}
	if path == "" {
		return "", fmt.Errorf("identifier: empty path")
	}
	for _, c := range namespace {
		if !isNamespaceChar(c) {
			return "", fmt.Errorf("identifier: invalid namespace character %q in %q", c, namespace)
		}
	}
	for _, c := range path {
		if !isPathChar(c) {
			return "", fmt.Errorf("identifier: invalid path character %q in %q", c, path)
		}
	}
	return Identifier(namespace + ":" + path), nil
}

// ParseIdentifier parses "namespace:path", failing closed on a missing
// separator or any disallowed character.
func ParseIdentifier(s string) (Identifier, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", fmt.Errorf("identifier: missing ':' separator in %q", s)
	}
	return NewIdentifier(s[:i], s[i+1:])
}

// Encode writes the Identifier to w.
func (v Identifier) Encode(w io.Writer) error {
	return String(v).Encode(w)
}

// DecodeIdentifier reads and validates an Identifier from r.
func DecodeIdentifier(r io.Reader) (Identifier, error) {
	s, err := DecodeString(r, 32767)
	if err != nil {
		return "", err
	}
	return ParseIdentifier(string(s))
}

// Namespace returns the namespace part of the identifier.
func (id Identifier) Namespace() string {
	s := string(id)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return ""
	}
	return s[:i]
}

// Path returns the path part of the identifier.
func (id Identifier) Path() string {
	s := string(id)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return s
	}
	return s[i+1:]
}

// Compare orders identifiers lexicographically over (namespace, path).
func (id Identifier) Compare(other Identifier) int {
	an, ap := id.Namespace(), id.Path()
	bn, bp := other.Namespace(), other.Path()
	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}
	switch {
	case ap < bp:
		return -1
	case ap > bp:
		return 1
	default:
		return 0
	}
}
