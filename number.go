// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ojson

import "github.com/db47h/ojson/token"

// numState is one state of the number-literal scanning DFA, modeled after
// the teacher's state-as-function number lexer (state/num.go) but
// collapsed into a single forward scan over lookahead characters rather
// than a chain of StateFns, since here the scan must not consume input
// until the caller commits to the token via a later Next* call.
type numState int8

const (
	numNone numState = iota
	numSign
	numDigit
	numDecimal
	numFractionDigit
	numExpE
	numExpSign
	numExpDigit
)

// minIncompleteInteger is i64::MIN / 10. Once the running negative total
// drops below this, one more digit could underflow past i64::MIN, so
// fitsInLong must be abandoned.
const minIncompleteInteger = minInt64 / 10

const minInt64 = -1 << 63

// peekNumber runs the number DFA starting at pos (which has not been
// touched yet) without consuming any input. On a match it sets
// r.peekedLong or r.peekedNumberLength and returns LONG or NUMBER; on no
// match (including "surrendered": a literal longer than the buffer) it
// returns token.None and the caller falls back to the lenient
// unquoted-literal path.
func (r *Reader) peekNumber() (token.Kind, error) {
	var (
		value       int64
		negative    bool
		fitsInLong  = true
		state       = numNone
		i           = 0
		lastAccept  = numNone // last state that is a valid accepting state
		acceptedLen = -1
	)

	for {
		c, full, err := r.peekCharAt(i)
		if err != nil {
			return token.None, err
		}
		if full {
			// Buffer exhausted before the literal terminated: surrender.
			return token.None, nil
		}

		switch state {
		case numNone:
			switch {
			case c == '-':
				negative = true
				state = numSign
			case c == '0':
				value = 0
				state = numDigit
			case c >= '1' && c <= '9':
				value = -int64(c - '0')
				state = numDigit
			default:
				return token.None, nil
			}

		case numSign:
			switch {
			case c == '0':
				value = 0
				state = numDigit
			case c >= '1' && c <= '9':
				value = -int64(c - '0')
				state = numDigit
			default:
				return token.None, nil
			}

		case numDigit:
			switch {
			case c >= '0' && c <= '9':
				if value == 0 {
					// "0" followed directly by another digit: reject
					// (guards against octal-looking literals).
					return token.None, nil
				}
				digit := int64(c - '0')
				if value < minIncompleteInteger {
					fitsInLong = false
				}
				next := value*10 - digit
				if fitsInLong && next > value {
					// multiply-add would underflow past i64::MIN.
					fitsInLong = false
				}
				value = next
			case c == '.':
				state = numDecimal
			case c == 'e' || c == 'E':
				state = numExpE
			default:
				lastAccept, acceptedLen = numDigit, i
				goto done
			}

		case numDecimal:
			if c >= '0' && c <= '9' {
				state = numFractionDigit
			} else {
				return token.None, nil
			}

		case numFractionDigit:
			switch {
			case c >= '0' && c <= '9':
				// stay
			case c == 'e' || c == 'E':
				state = numExpE
			default:
				lastAccept, acceptedLen = numFractionDigit, i
				goto done
			}

		case numExpE:
			switch {
			case c == '+' || c == '-':
				state = numExpSign
			case c >= '0' && c <= '9':
				state = numExpDigit
			default:
				return token.None, nil
			}

		case numExpSign:
			if c >= '0' && c <= '9' {
				state = numExpDigit
			} else {
				return token.None, nil
			}

		case numExpDigit:
			switch {
			case c >= '0' && c <= '9':
				// stay
			default:
				lastAccept, acceptedLen = numExpDigit, i
				goto done
			}
		}
		i++
	}

done:
	if acceptedLen < 0 {
		return token.None, nil
	}
	switch lastAccept {
	case numDigit:
		if value == 0 && negative {
			// "-0" is reported as NUMBER rather than LONG, so it is
			// parsed as a float downstream (strconv.ParseFloat("-0", 64)
			// compares equal to 0.0) instead of being collapsed into the
			// ordinary integer zero by the negative-accumulator trick.
			// See the design notes' open question on -0 round-tripping.
			r.peekedNumberLength = acceptedLen
			r.peekedConsumeLen = acceptedLen
			return token.Number, nil
		}
		if value == minInt64 && !negative {
			// The accumulator runs negative throughout the scan, so a
			// positive literal reaching exactly math.MinInt64 in magnitude
			// (2^63) has no positive int64 to negate into.
			r.peekedNumberLength = acceptedLen
			r.peekedConsumeLen = acceptedLen
			return token.Number, nil
		}
		if !fitsInLong {
			r.peekedNumberLength = acceptedLen
			r.peekedConsumeLen = acceptedLen
			return token.Number, nil
		}
		if negative {
			r.peekedLong = value
		} else {
			r.peekedLong = -value
		}
		r.peekedConsumeLen = acceptedLen
		return token.Long, nil
	case numFractionDigit, numExpDigit:
		r.peekedNumberLength = acceptedLen
		r.peekedConsumeLen = acceptedLen
		return token.Number, nil
	default:
		return token.None, nil
	}
}
