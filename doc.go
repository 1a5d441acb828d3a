/*
Package airp reads and writes a lenient JSON dialect.
In contrast to encoding/json airp is centered around a tree model: Parse
returns a *Value, a tagged union of null, booleans, numbers, strings, arrays
and objects, and Print renders such a tree back to indented text.

The accepted input is a superset of JSON:
  - strings may be delimited by single quotes,
  - object keys may be bare words read up to the colon,
  - commas between entries may be missing or trailing,
  - numbers keep their kind: a numeral without '.' or exponent is an integer.

String contents are kept as written. Escape sequences are not decoded, they
are passed through to the printer unchanged.

Parse reports how much of its input it consumed so callers can detect
trailing content; ParseStrict does that check itself.
*/
package airp // import "github.com/d1ced/airp"
