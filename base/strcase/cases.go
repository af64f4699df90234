// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

// Package strcase converts display names into the kebab-case form
// scheme.Slug uses for its generated filename-safe slug.
package strcase

import (
	"strings"
	"unicode"
)

// ToKebab converts s to lower-case-words-with-dashes: a new word starts
// at a lower-to-upper case transition, at a letter/digit boundary, and
// at any run of characters that aren't letters or digits (spaces,
// underscores, punctuation), which are dropped rather than kept.
func ToKebab(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if i > 0 && b.Len() > 0 && startsNewWord(runes, i) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func startsNewWord(runes []rune, i int) bool {
	cur, prev := runes[i], runes[i-1]
	if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(cur) && !unicode.IsUpper(prev) {
		return true
	}
	if unicode.IsDigit(cur) != unicode.IsDigit(prev) {
		return true
	}
	return false
}
