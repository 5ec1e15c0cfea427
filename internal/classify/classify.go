package classify

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCategory receives files whose extension matches no rule, including
// files without an extension.
const DefaultCategory = "Others"

//go:embed rules.toml
var rulesTOML []byte

type ruleFile struct {
	Categories map[string][]string `toml:"categories"`
}

var (
	tableOnce sync.Once
	byExt     map[string]string
	labels    []string
)

func table() map[string]string {
	tableOnce.Do(func() {
		var rules ruleFile
		if err := toml.Unmarshal(rulesTOML, &rules); err != nil {
			panic(fmt.Sprintf("classify: embedded rule table is invalid: %v", err))
		}

		titler := cases.Title(language.Und)
		byExt = make(map[string]string, 64)
		labelSet := map[string]struct{}{DefaultCategory: {}}
		for name, extensions := range rules.Categories {
			label := titler.String(strings.TrimSpace(name))
			labelSet[label] = struct{}{}
			for _, ext := range extensions {
				byExt[strings.ToLower(strings.TrimSpace(ext))] = label
			}
		}

		labels = make([]string, 0, len(labelSet))
		for label := range labelSet {
			labels = append(labels, label)
		}
		sort.Strings(labels)
	})
	return byExt
}

// Classify resolves a file extension to its category label. The extension may
// carry a leading dot and arbitrary casing; unknown and empty extensions
// resolve to DefaultCategory.
func Classify(ext string) string {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if normalized == "" {
		return DefaultCategory
	}
	if label, ok := table()[normalized]; ok {
		return label
	}
	return DefaultCategory
}

// Categories returns every known category label in sorted order, including
// DefaultCategory.
func Categories() []string {
	table()
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
