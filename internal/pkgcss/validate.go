package pkgcss

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrInvalidStylesheet is returned when rendered output does not parse cleanly
var ErrInvalidStylesheet = errors.New("invalid stylesheet")

// StylesheetStats summarizes a parsed stylesheet
type StylesheetStats struct {
	Rules        int // Rulesets (selector group + declaration block)
	Declarations int
}

// ValidateStylesheet parses content as CSS and rejects selector groups
// that are empty or end in a comma
func ValidateStylesheet(content []byte) (StylesheetStats, error) {
	var stats StylesheetStats
	p := css.NewParser(parse.NewInputBytes(content), false)

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return stats, fmt.Errorf("%w: %v", ErrInvalidStylesheet, err)
			}
			return stats, nil

		case css.BeginRulesetGrammar:
			stats.Rules++
			if err := checkSelector(p.Values()); err != nil {
				return stats, fmt.Errorf("%w: rule %d: %v", ErrInvalidStylesheet, stats.Rules, err)
			}

		case css.DeclarationGrammar:
			stats.Declarations++
			if len(p.Values()) == 0 {
				return stats, fmt.Errorf("%w: declaration %q has no value", ErrInvalidStylesheet, string(data))
			}
		}
	}
}

// checkSelector inspects the prelude tokens of a ruleset
func checkSelector(tokens []css.Token) error {
	var significant []css.Token
	for _, tok := range tokens {
		if tok.TokenType == css.WhitespaceToken || tok.TokenType == css.CommentToken {
			continue
		}
		significant = append(significant, tok)
	}

	if len(significant) == 0 {
		return errors.New("empty selector")
	}
	last := significant[len(significant)-1]
	if last.TokenType == css.CommaToken {
		return fmt.Errorf("selector %q ends with a comma", selectorText(tokens))
	}
	return nil
}

func selectorText(tokens []css.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.Write(tok.Data)
	}
	return strings.TrimSpace(b.String())
}
