// Package base79 provides arbitrary precision base 79 fractions for use as
// ordering keys.
//
// A Number is a value in [0, 1) written, most significant digit first, with
// one printable ASCII character per digit and no leading "0.". New keys are
// made by averaging neighbours, so an item can always be placed between two
// others without renumbering the rest of the sequence.
//
// Alphabet
//
// The 79 digits are the characters '+' (0) through 'y' (78):
//
//  +,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_`abcdefghijklmnopqrstuvwxy
//
// The alphabet is in ASCII order, so comparing the encoded text of two keys
// byte by byte gives the same order as comparing the numbers. Space, quote
// marks and the ends of the printable range are left out so keys read well
// and rarely need escaping.
//
// Canonical Form
//
// Trailing zero digits are never stored ("R+" and "R" would be the same
// number) and Parse rejects text ending in '+'. Leading zero digits are place
// values: "+f" is 59/6241 while "f" is 59/79. Zero is the empty string.
//
// Averages
//
// Average, AverageWithZero and AverageWithOne truncate to the length of the
// longer input. This keeps keys short at the cost of precision: the average
// of two keys that are adjacent at their length is one of the keys.
// Between, BetweenZero and BetweenOne add a single digit when that happens
// and always return a value strictly inside the interval.
//
// Example
//
//  n1 := base79.Mid()                 // "R", digits [39]
//  n2 := base79.AverageWithZero(n1)   // ">", digits [19]
//  n3 := base79.AverageWithOne(n1)    // "f", digits [59]
//  n4 := base79.Average(n1, n2)       // "H", digits [29]
//
//  n5, _ := base79.Parse("s?Q^Z")     // digits [72 20 38 51 47]
package base79
