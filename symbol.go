package huffmantree

import (
	"unicode"
)

// Symbol represents one character of the input alphabet.  Negative symbols
// are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromString splits text into its sequence of symbols.  Invalid UTF-8
// bytes become U+FFFD.
func SymbolsFromString(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, ch := range text {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsToString is the inverse of SymbolsFromString.
func SymbolsToString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for index, symbol := range symbols {
		runes[index] = rune(symbol)
	}
	return string(runes)
}
