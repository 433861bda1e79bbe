// Package text computes statistics, a coarse language tag and an encoding
// flag for any textual clipboard content.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/clipscope/internal/classify"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// Language tags.
const (
	LangChinese  = "zh-CN"
	LangJapanese = "ja"
	LangKorean   = "ko"
	LangRussian  = "ru"
	LangGreek    = "el"
	LangEnglish  = "en"
)

// Encoding flags.
const (
	EncodingUTF8      = "utf-8"
	EncodingCorrupted = "corrupted"
)

// blocks are tested in order; the first block with any rune in the text wins.
var blocks = []struct {
	lang  string
	table *unicode.RangeTable
}{
	{LangChinese, unicode.Han},
	{LangJapanese, kana},
	{LangKorean, unicode.Hangul},
	{LangRussian, unicode.Cyrillic},
	{LangGreek, unicode.Greek},
}

var kana = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309f, Stride: 1},
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1},
	},
}

// Analyse returns the text details for content declared with mimeType.
func Analyse(content, mimeType string) domain.TextDetails {
	return domain.TextDetails{
		Stats:    Stats(content),
		Language: Language(content),
		Encoding: Encoding(content),
		Charset:  classify.Param(mimeType, "charset"),
	}
}

// Stats counts lines, words and characters.
// Lines are split on "\n", so the empty string has one line.
func Stats(content string) domain.TextStats {
	noSpaces := 0
	for _, r := range content {
		if !unicode.IsSpace(r) {
			noSpaces++
		}
	}
	return domain.TextStats{
		Lines:              strings.Count(content, "\n") + 1,
		Words:              len(strings.Fields(content)),
		Characters:         utf8.RuneCountInString(content),
		CharactersNoSpaces: noSpaces,
	}
}

// Language returns a coarse language tag from Unicode block tests.
func Language(content string) string {
	for _, b := range blocks {
		if containsAny(content, b.table) {
			return b.lang
		}
	}
	return LangEnglish
}

// Encoding flags text containing the Unicode replacement character.
func Encoding(content string) string {
	if strings.ContainsRune(content, utf8.RuneError) {
		return EncodingCorrupted
	}
	return EncodingUTF8
}

func containsAny(s string, table *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}
