// Package conv provides checked integer conversions for the wire codec.
//
// Keys and counts travel as u64 on the wire but are int in memory. Decoded
// values are untrusted, so every narrowing conversion is bounds checked and
// size budgets are computed without overflow.
package conv
