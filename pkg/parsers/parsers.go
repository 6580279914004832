// Package parsers implements the grammars of the supported tools.
// Each constructor returns a fresh parser.Parser; parsers aren't shared between goroutines.
package parsers
