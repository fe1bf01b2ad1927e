package env

import (
	"errors"
	"strings"

	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseDotenv parses dotenv format content into the values map.
// Supported format:
//   - Lines starting with # are comments
//   - Empty lines are ignored
//   - KEY=value (unquoted, inline " #" comments stripped)
//   - KEY="value" (double-quoted, escape sequences: \n, \r, \t, \\, \", \$)
//   - KEY='value' (single-quoted, literal)
//   - export KEY=value (export prefix is optional and ignored)
//   - KEY= (empty value)
//
// The filename parameter is used for error metadata only.
func parseDotenv(values map[string]string, content []byte, filename string) error {
	lines := strings.Split(string(content), "\n")

	for i, line := range lines {
		lineNum := i + 1

		// Trim a trailing carriage return for Windows line endings
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")
		line = strings.TrimSpace(line)

		key, value, found := strings.Cut(line, "=")
		if !found {
			return parseError(filename, lineNum, "invalid format (missing '=')")
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return parseError(filename, lineNum, "empty variable name")
		}

		parsed, err := parseValue(value)
		if err != nil {
			return parseError(filename, lineNum, err.Error())
		}

		values[key] = parsed
	}

	return nil
}

// parseError builds a dotenv parse error carrying the file position.
func parseError(filename string, line int, reason string) error {
	err := zerr.With(domain.ErrDotenvParseFailed, "file", filename)
	err = zerr.With(err, "line", line)
	return zerr.With(err, "reason", reason)
}

// parseValue parses a dotenv value, handling quoting and escape sequences.
func parseValue(value string) (string, error) {
	value = strings.TrimSpace(value)

	if value == "" {
		return "", nil
	}

	if value[0] == '"' {
		if len(value) < 2 || value[len(value)-1] != '"' {
			return "", errors.New("unterminated double quote")
		}
		return unescapeDoubleQuoted(value[1 : len(value)-1]), nil
	}
	if value[0] == '\'' {
		if len(value) < 2 || value[len(value)-1] != '\'' {
			return "", errors.New("unterminated single quote")
		}
		// Single-quoted values are literal, no escape processing
		return value[1 : len(value)-1], nil
	}

	// Unquoted: strip inline comments
	if idx := strings.Index(value, " #"); idx != -1 {
		value = strings.TrimSpace(value[:idx])
	}

	return value, nil
}

// unescapeDoubleQuoted processes escape sequences in a double-quoted value.
func unescapeDoubleQuoted(value string) string {
	var result strings.Builder
	result.Grow(len(value))

	i := 0
	for i < len(value) {
		if value[i] == '\\' && i+1 < len(value) {
			next := value[i+1]
			switch next {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '"':
				result.WriteByte('"')
			case '$':
				result.WriteByte('$')
			default:
				// Unknown escape, keep both characters
				result.WriteByte('\\')
				result.WriteByte(next)
			}
			i += 2
			continue
		}
		result.WriteByte(value[i])
		i++
	}

	return result.String()
}
