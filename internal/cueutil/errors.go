// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// FormatError rewrites a CUE error as "<file>: <path>: <message>", one line per
// underlying error.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		raw := cueerrors.Path(e)
		msg := e.Error()
		for _, prefix := range []string{jsonPath(raw), strings.Join(raw, ".")} {
			if prefix != "" && strings.HasPrefix(msg, prefix+":") {
				msg = strings.TrimSpace(strings.TrimPrefix(msg, prefix+":"))
				break
			}
		}
		path := jsonPath(withoutDefinition(raw))
		if path == "" {
			lines = append(lines, msg)
			continue
		}
		lines = append(lines, path+": "+msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// withoutDefinition drops the leading schema definition label (e.g. "#Config")
// so paths name fields as they appear in the user's document.
func withoutDefinition(path []string) []string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		return path[1:]
	}
	return path
}

// jsonPath renders ["a", "0", "b"] as "a[0].b".
func jsonPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
