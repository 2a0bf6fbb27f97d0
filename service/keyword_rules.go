package service

import (
	"embed"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed rules/default.yaml
var rulesFS embed.FS

// KeywordRule describes one risk keyword family.
type KeywordRule struct {
	Name    string   `yaml:"name"`
	Stem    string   `yaml:"stem,omitempty"`
	Endings []string `yaml:"endings,omitempty"`
	Forms   []string `yaml:"forms,omitempty"`
}

type keywordRuleSet struct {
	Rules []KeywordRule `yaml:"rules"`
}

// DefaultKeywordRules returns the built-in rule set.
func DefaultKeywordRules() []KeywordRule {
	data, err := rulesFS.ReadFile("rules/default.yaml")
	if err != nil {
		panic(err)
	}
	rules, err := parseKeywordRules(data)
	if err != nil {
		panic(err)
	}
	return rules
}

// LoadKeywordRules reads a rule set from a YAML file.
func LoadKeywordRules(path string) ([]KeywordRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading keyword rules %q", path)
	}
	rules, err := parseKeywordRules(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading keyword rules %q", path)
	}
	return rules, nil
}

func parseKeywordRules(data []byte) ([]KeywordRule, error) {
	var set keywordRuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	if len(set.Rules) == 0 {
		return nil, errors.New("no rules defined")
	}
	for i, r := range set.Rules {
		if r.Name == "" {
			return nil, errors.Errorf("rule %d has no name", i)
		}
		if r.Stem == "" && len(r.Forms) == 0 {
			return nil, errors.Errorf("rule %q needs a stem or forms", r.Name)
		}
	}
	return set.Rules, nil
}

type keywordMatcher struct {
	name string
	re   *regexp.Regexp
}

// Pattern renders the rule as a case-insensitive, word-anchored expression.
func (r KeywordRule) Pattern() string {
	var alts []string
	if r.Stem != "" {
		alts = append(alts, stemPattern(r.Stem, r.Endings))
	}
	for _, f := range r.Forms {
		alts = append(alts, regexp.QuoteMeta(f))
	}
	return `(?i)\b(?:` + strings.Join(alts, "|") + `)\b`
}

func stemPattern(stem string, endings []string) string {
	optional := len(endings) == 0
	var suffixes []string
	for _, e := range endings {
		if e == "" {
			optional = true
			continue
		}
		suffixes = append(suffixes, regexp.QuoteMeta(e))
	}
	p := regexp.QuoteMeta(stem)
	if len(suffixes) == 0 {
		return p
	}
	p += "(?:" + strings.Join(suffixes, "|") + ")"
	if optional {
		p += "?"
	}
	return p
}

func compileKeywordRules(rules []KeywordRule) ([]keywordMatcher, error) {
	matchers := make([]keywordMatcher, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern())
		if err != nil {
			return nil, errors.Wrapf(err, "compiling rule %q", r.Name)
		}
		matchers = append(matchers, keywordMatcher{name: r.Name, re: re})
	}
	return matchers, nil
}
