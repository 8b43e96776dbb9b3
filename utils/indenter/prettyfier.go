package indenter

import "strings"

// indenter incrementally builds a string where nested components are
// placed on their own indented lines.
type indenter struct {
	buffer string
	level  int
}

func Indenter() indenter {
	return indenter{}
}

func (i indenter) indent() string {
	return strings.Repeat("  ", i.level)
}

func (i indenter) Start(str string) indenter {
	i.buffer = str
	return i
}

// NestThunkedSep nests the given components, separated by sep. A single
// component is placed in-line instead.
func (i indenter) NestThunkedSep(sep string, strs ...func() string) indenter {
	if len(strs) == 1 {
		i.buffer += strs[0]()
		return i
	}

	i.level++
	for j, str := range strs {
		i.buffer += "\n" + i.indent() + str()
		if j < len(strs)-1 {
			i.buffer += sep
		}
	}
	i.level--
	i.buffer += "\n"
	return i
}

// End closes the built string and yields the result.
func (i indenter) End(str string) string {
	if i.buffer != "" && i.buffer[len(i.buffer)-1] == '\n' {
		return i.buffer + i.indent() + str
	}
	return i.buffer + str
}
