// Package search implements the free text search over transactions.
//
// A query is folded to lowercase ASCII-ish text and then consumed from
// left to right: at most one time phrase, at most one wallet phrase and
// an income intent word constrain the match, whatever is left is matched
// against the note, the category and the amount.
package search

import (
	"strings"
	"time"
	"unicode"

	"github.com/ryanuber/go-glob"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining diacritical marks
var diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize removes Vietnamese diacritics and lowercases s, so that
// "Tiền Mặt" and "tien mat" compare equal.
func Normalize(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(diacritics)),
		runes.Map(func(r rune) rune {
			switch r {
			case 'đ':
				return 'd'
			case 'Đ':
				return 'D'
			}
			return r
		}),
	)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

type phrase struct {
	text  string
	match func(t models.Transaction, now time.Time) bool
}

// Only the first phrase found in each group applies.
var (
	timePhrases = []phrase{
		{"thang truoc", func(t models.Transaction, now time.Time) bool {
			return types.MonthOf(now).AddDate(0, -1).Contains(t.Date)
		}},
		{"thang nay", func(t models.Transaction, now time.Time) bool {
			return types.MonthOf(now).Contains(t.Date)
		}},
		{"hom nay", func(t models.Transaction, now time.Time) bool {
			return types.SameDay(now, t.Date)
		}},
		{"hom qua", func(t models.Transaction, now time.Time) bool {
			return types.SameDay(now.AddDate(0, 0, -1), t.Date)
		}},
	}

	sourcePhrases = []phrase{
		{"tien mat", source(models.WalletCash)},
		{"ngan hang", source(models.WalletBank)},
		{"vi", source(models.WalletEwallet)},
	}

	incomeWords = []string{"thu", "luong"}
)

func source(w models.WalletType) func(models.Transaction, time.Time) bool {
	return func(t models.Transaction, _ time.Time) bool {
		return t.Source == w
	}
}

// consume applies the first phrase of the group contained in term. It
// returns the term with that phrase removed once and whether t satisfies
// the phrase's constraint.
func consume(group []phrase, term string, t models.Transaction, now time.Time) (string, bool) {
	for _, p := range group {
		if !strings.Contains(term, p.text) {
			continue
		}

		if !p.match(t, now) {
			return term, false
		}

		return strings.TrimSpace(strings.Replace(term, p.text, "", 1)), true
	}

	return term, true
}

// Match reports whether the transaction matches the query at time now.
func Match(t models.Transaction, query string, now time.Time) bool {
	term := Normalize(strings.TrimSpace(query))
	if term == "" {
		return true
	}

	term, ok := consume(timePhrases, term, t, now)
	if !ok {
		return false
	}

	term, ok = consume(sourcePhrases, term, t, now)
	if !ok {
		return false
	}

	// Income words stay in the term, they may also be part of a note
	for _, word := range incomeWords {
		if term == word && t.Type != models.TypeIncome {
			return false
		}
	}

	if term == "" {
		return true
	}

	return matchResidual(t, term)
}

func matchResidual(t models.Transaction, term string) bool {
	note := Normalize(t.Note)
	category := Normalize(t.Category)
	amount := t.Amount.String()
	amountTerm := strings.Replace(term, "k", "000", 1)

	if strings.Contains(term, glob.GLOB) {
		return glob.Glob(term, note) || glob.Glob(term, category) || glob.Glob(amountTerm, amount)
	}

	return strings.Contains(note, term) || strings.Contains(category, term) || strings.Contains(amount, amountTerm)
}
