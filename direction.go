package ggrad

import (
	"fmt"

	"golang.org/x/text/language"
)

// TextDirection selects how directional alignments resolve.
type TextDirection uint8

const (
	// LeftToRight resolves the start edge to the left.
	LeftToRight TextDirection = iota
	// RightToLeft resolves the start edge to the right.
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d TextDirection) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Scripts written right to left, by ISO 15924 code.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
	"Yezi": true,
}

// DirectionForLocale returns the text direction of a BCP 47 locale such as
// "en-US", "ar" or "az-Arab". The script is inferred when not given
// explicitly.
func DirectionForLocale(locale string) (TextDirection, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return LeftToRight, fmt.Errorf("ggrad: parse locale %q: %w", locale, err)
	}
	script, conf := tag.Script()
	if conf == language.No {
		return LeftToRight, nil
	}
	if rtlScripts[script.String()] {
		return RightToLeft, nil
	}
	return LeftToRight, nil
}
