package a

import "strings"

type alias string

func badCompact(words []string) string {
	var compact string
	for _, w := range words {
		compact += w // want "string \\+= inside loop"
	}
	return compact
}

func badNamedType(parts []alias) alias {
	var out alias
	for i := 0; i < len(parts); i++ {
		out += parts[i] + " " // want "string \\+= inside loop"
	}
	return out
}

func goodBuilder(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
	}
	return b.String()
}

func goodCount(words []string) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}
