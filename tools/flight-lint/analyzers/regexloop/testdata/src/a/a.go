package a

import (
	"regexp"
	"strings"
)

func badRegexp(inputs []string) {
	for _, in := range inputs {
		re := regexp.MustCompile(`^city of `) // want "regexp.MustCompile called inside loop"
		_ = re.ReplaceAllString(in, "")
	}
}

func badReplacer(aliases []string) {
	for _, alias := range aliases {
		r := strings.NewReplacer("0", "o", "1", "i") // want "strings.NewReplacer called inside loop"
		_ = r.Replace(alias)
	}
}

var digits = strings.NewReplacer("0", "o", "1", "i")

func good(aliases []string) {
	for _, alias := range aliases {
		_ = digits.Replace(alias)
	}
}

func goodLocal(inputs []string) {
	re := regexp.MustCompile(`\s+`)
	for _, in := range inputs {
		_ = re.ReplaceAllString(in, " ")
	}
}
