// Package textstream packages a byte stream into short, self-delimiting lines that survive
// storage in a lossy text stream, and unpacks them again.
//
// # Overview
//
// A conforming text stream only guarantees to reproduce what was written when:
//
//  1. Data consist of printing characters, HT and the line terminator LF
//  2. No line ends in a space character (trailing SP/HT may be trimmed)
//  3. Lines stay within a minimum supported length (254 characters including EOL)
//
// The encoder cuts the input into frames that satisfy all three, the decoder reverses it.
//
// # Frame Format
//
// Each line follows this format:
//
//	length data marker\n
//
// Without the spaces. Where:
//
//   - length: two lowercase hex digits, the number of data bytes (00 to fa).
//   - data: exactly length bytes of the original text. Never contains LF.
//   - marker: `<` if the original text had a line terminator right after data,
//     `/` if the line was only broken to stay within the length limit.
//
// The marker is never a space, so a frame line always ends in a non-space character.
//
// # Examples
//
// Example 1: short line, default line size
//
//	input:  "hi\n"
//	output: "02hi<\n"
//
// Example 2: line size 4
//
//	input:  "abcdef\n"
//	output: "04abcd/\n02ef<\n"
//
// Example 3: input ends without a line terminator
//
//	input:  "tail"
//	output: "04tail/\n"
//
// # Whitespace Margin
//
// A space or tab reserves one extra byte of room when the encoder decides whether it may
// keep buffering. With line size 5 the input "abc d\n" closes the first frame after "abc "
// (4 bytes) while "abcxd\n" fills it to 5 bytes.
package textstream
