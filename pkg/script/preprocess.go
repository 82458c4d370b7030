// Package script provides an optional Lisp front end over pkg/kernel and
// pkg/revoxel, wrapping zygomys in a sandboxed environment the same way the wider
// toolchain wraps it for its own DSL.
package script

// kwPrefix marks a preprocessed keyword token as a string literal.
const kwPrefix = "__kw_"

// preprocessor scans voxel-script source one byte at a time, copying it
// into out with the rewrites preprocessSource documents. It always
// looks up escape/boundary context in src (the untouched original),
// never in out, so a rewrite earlier in the stream can't confuse a
// later lookbehind.
type preprocessor struct {
	src []byte
	out []byte
	i   int
}

// preprocessSource rewrites source before handing it to zygomys:
//
//   - :keyword -> "__kw_keyword", avoiding the need to register keyword
//     symbols as globals that could collide with user bindings.
//   - kebab-case identifiers -> underscore form, since zygomys treats a
//     bare hyphen between identifier characters as subtraction.
//   - digit-group separators in integer literals (10_000) are dropped,
//     since voxel cell coordinates and box dimensions get large and
//     zygomys's number reader has no concept of them.
//   - ; line comments -> // line comments, zygomys's native form.
//
// All rewrites skip over double-quoted and backtick-quoted string
// literals so they never touch literal text.
func preprocessSource(source string) string {
	p := preprocessor{
		src: []byte(source),
		out: make([]byte, 0, len(source)+len(source)/4),
	}
	for p.i < len(p.src) {
		switch {
		case p.at('"'):
			p.copyQuoted('"', true)
		case p.at('`'):
			p.copyQuoted('`', false)
		case p.at(';'):
			p.copyComment()
		case p.at(':') && p.copyKeyword():
			// handled by copyKeyword
		case p.atDigitSeparator():
			p.i++ // drop the underscore, the digit run merges either side
		case p.at('-') && p.atKebabHyphen():
			p.out = append(p.out, '_')
			p.i++
		default:
			p.out = append(p.out, p.src[p.i])
			p.i++
		}
	}
	return string(p.out)
}

func (p *preprocessor) at(c byte) bool {
	return p.i < len(p.src) && p.src[p.i] == c
}

// copyQuoted copies a quote-delimited literal through verbatim.
// Double-quoted strings honor backslash escapes; backtick strings are
// raw, matching zygomys's own string literal rules.
func (p *preprocessor) copyQuoted(quote byte, escaped bool) {
	p.out = append(p.out, p.src[p.i])
	p.i++
	for p.i < len(p.src) && p.src[p.i] != quote {
		if escaped && p.src[p.i] == '\\' && p.i+1 < len(p.src) {
			p.out = append(p.out, p.src[p.i], p.src[p.i+1])
			p.i += 2
			continue
		}
		p.out = append(p.out, p.src[p.i])
		p.i++
	}
	if p.i < len(p.src) {
		p.out = append(p.out, p.src[p.i])
		p.i++
	}
}

// copyComment rewrites a ;-introduced line comment (collapsing a run of
// leading semicolons, Lisp's ;; convention) to zygomys's // form.
func (p *preprocessor) copyComment() {
	p.out = append(p.out, '/', '/')
	p.i++
	for p.at(';') {
		p.i++
	}
	for p.i < len(p.src) && p.src[p.i] != '\n' {
		p.out = append(p.out, p.src[p.i])
		p.i++
	}
}

// copyKeyword, when positioned at a ':' that opens a keyword token
// (not the := assignment operator, and followed by a letter), writes
// the "__kw_name" string form and reports true. Otherwise it leaves p
// untouched and reports false, so the caller falls through to copying
// the ':' literally.
func (p *preprocessor) copyKeyword() bool {
	if p.i+1 >= len(p.src) || p.src[p.i+1] == '=' || !isLetter(p.src[p.i+1]) {
		return false
	}
	j := p.i + 1
	for j < len(p.src) && isKWChar(p.src[j]) {
		j++
	}
	p.out = append(p.out, '"')
	p.out = append(p.out, kwPrefix...)
	p.out = append(p.out, p.src[p.i+1:j]...)
	p.out = append(p.out, '"')
	p.i = j
	return true
}

// atKebabHyphen reports whether the current '-' sits between identifier
// characters rather than acting as the subtraction operator, e.g. the
// hyphen in cylinder-z but not the one in (- a b).
func (p *preprocessor) atKebabHyphen() bool {
	return p.i > 0 && p.i+1 < len(p.src) &&
		isIdentChar(p.src[p.i-1]) && isIdentStartChar(p.src[p.i+1])
}

// atDigitSeparator reports whether the current '_' sits between two
// decimal digits, i.e. a Go-style digit-group separator inside an
// integer cell literal such as the box extent in (box 0 0 0 10_000
// 10_000 4).
func (p *preprocessor) atDigitSeparator() bool {
	return p.src[p.i] == '_' && p.i > 0 && p.i+1 < len(p.src) &&
		isDigit(p.src[p.i-1]) && isDigit(p.src[p.i+1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// isKW reports whether a raw string value is a preprocessed keyword
// token, returning its name with the prefix stripped.
func isKW(s string) (string, bool) {
	if len(s) > len(kwPrefix) && s[:len(kwPrefix)] == kwPrefix {
		return s[len(kwPrefix):], true
	}
	return "", false
}
