// Package constants holds the named terms players unlock while progressing
// through the game, and the Provider that gates them.
package constants

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/vic/golam/pkg/lambda"
)

// Section is a group of levels, in game order.
type Section int

const (
	Basic Section = iota
	Boolean
	PairAndList
	Recursion
	Numerals
)

// Sections lists every section in game order.
var Sections = []Section{Basic, Boolean, PairAndList, Recursion, Numerals}

func (s Section) String() string {
	switch s {
	case Basic:
		return "basic"
	case Boolean:
		return "boolean"
	case PairAndList:
		return "pair and list"
	case Recursion:
		return "recursion"
	case Numerals:
		return "numerals"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// ParseSection accepts a section name as printed by String, case-insensitive.
// Underscores may replace spaces.
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.ReplaceAll(name, "_", " "))
	for _, s := range Sections {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", name)
}

type definition struct {
	name string
	term string
}

// definitions are listed per section in the order their levels unlock them.
var definitions = map[Section][]definition{
	Basic: {
		{"ID", "x: x"},
		{"COMPOSE", "f: g: x: f (g x)"},
		{"FLIP", "f: a: b: f b a"},
	},
	Boolean: {
		{"TRUE", "a: b: a"},
		{"FALSE", "a: b: b"},
		{"IF", "c: t: e: c t e"},
		{"NOT", "p: p (a: b: b) (a: b: a)"},
		{"AND", "p: q: p q p"},
		{"OR", "p: q: p p q"},
	},
	PairAndList: {
		{"PAIR", "a: b: f: f a b"},
		{"FST", "p: p (a: b: a)"},
		{"SND", "p: p (a: b: b)"},
		{"NIL", "x: a: b: a"},
		{"ISNIL", "l: l (h: t: a: b: b)"},
	},
	Recursion: {
		{"Y", "f: (x: f (x x)) (x: f (x x))"},
	},
	Numerals: {
		{"ZERO", "f: x: x"},
		{"SUCC", "n: f: x: f (n f x)"},
		{"ISZERO", "n: n (x: a: b: b) (a: b: a)"},
		{"ADD", "m: n: f: x: m f (n f x)"},
		{"MUL", "m: n: f: m (n f)"},
		{"PRED", "n: f: x: n (g: h: h (g f)) (u: x) (u: u)"},
	},
}

type constant struct {
	term    lambda.Term
	section Section
	index   int
}

// table is built on first use and never written again, so concurrent
// readers need no locking.
var table = sync.OnceValue(func() map[string]constant {
	all := make(map[string]constant)
	for _, section := range Sections {
		for i, def := range definitions[section] {
			all[def.name] = constant{
				term:    lambda.MustParse(def.term),
				section: section,
				index:   i,
			}
		}
	}
	return all
})

// Provider resolves the constants visible at some point of the game. The
// zero value sees no constants. It is a small value, cheap to copy and safe
// to share between goroutines.
type Provider struct {
	section Section
	count   int
	all     bool
}

// New returns a provider for a player who is in section and has unlocked
// count of its constants. Every constant of earlier sections is visible.
func New(section Section, count int) Provider {
	return Provider{section: section, count: count}
}

// All sees every constant.
func All() Provider {
	return Provider{all: true}
}

// None sees no constant.
func None() Provider {
	return Provider{section: Basic, count: 0}
}

func (p Provider) visible(c constant) bool {
	if p.all {
		return true
	}
	return c.section < p.section || (c.section == p.section && c.index < p.count)
}

// Get returns the definition of name if it is visible. Names are matched
// case-insensitively.
func (p Provider) Get(name string) (lambda.Term, bool) {
	c, ok := table()[strings.ToUpper(name)]
	if !ok || !p.visible(c) {
		return nil, false
	}
	return c.term, true
}

// Known lists the visible constant names, sorted.
func (p Provider) Known() []string {
	names := lo.FilterMap(lo.Entries(table()), func(e lo.Entry[string, constant], _ int) (string, bool) {
		return e.Key, p.visible(e.Value)
	})
	slices.Sort(names)
	return names
}

// Suggest returns the visible constant closest to an unresolved name, if any
// is close enough to be a likely typo.
func (p Provider) Suggest(name string) (string, bool) {
	known := p.Known()
	name = strings.ToUpper(name)
	if len(name) < minSuggestLen || slices.Contains(known, name) {
		return "", false
	}

	// Truncated names, like TRU for TRUE.
	ranks := fuzzy.RankFindFold(name, known)
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int { return a.Distance - b.Distance })
	if len(ranks) > 0 && closeEnough(ranks[0].Distance, len(ranks[0].Target)) {
		return ranks[0].Target, true
	}

	// Misspelled names, like FLASE for FALSE.
	best, bestDist := "", -1
	for _, k := range known {
		d := fuzzy.LevenshteinDistance(name, k)
		if closeEnough(d, len(name)) && (bestDist < 0 || d < bestDist) {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

const minSuggestLen = 3

func closeEnough(distance, length int) bool {
	return distance <= 2 && 2*distance < length
}

func (p Provider) String() string {
	if p.all {
		return "all"
	}
	return fmt.Sprintf("%s:%d", p.section, p.count)
}
