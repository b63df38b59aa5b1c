package a

type catalog struct {
	byAlias map[string]string
}

func bad(byAlias map[string]string, alias string) {
	if byAlias[alias] != "" {
		use(byAlias[alias]) // want "repeated map lookup"
	}
}

func badField(c *catalog, alias string) {
	if c.byAlias[alias] != "" {
		use(c.byAlias[alias]) // want "repeated map lookup"
	}
}

func good(byAlias map[string]string, alias string) {
	if key, ok := byAlias[alias]; ok {
		use(key)
	}
}

func goodWrite(counts map[string]int, input string) {
	if counts[input] == 0 {
		counts[input] = 1
	}
}

func goodDifferentKeys(byAlias map[string]string, a, b string) {
	if byAlias[a] != "" {
		use(byAlias[b])
	}
}

func use(string) {}
