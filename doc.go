// 01   Aug 6, 2026   Initial version

/*
Package lpreader provides a parser for the textual LP ("linear
programming") file format used by CPLEX-style optimization toolchains.
Given a byte stream describing a linear, mixed-integer, or
mixed-integer-quadratic problem, it produces an in-memory Model:
an objective, a set of linear/quadratic constraints with bounds,
variable domain and bound specifications, and special-ordered-set
groupings.

The package does not solve, presolve, or write LP files; it only reads
them. Solving and presolving are left to downstream components that
consume the Model this package returns.

Reading a Model

Models can be read three ways:

	model, err := lpreader.ReadFile("problem.lp")
	model, err := lpreader.ReadGzipFile("problem.lp.gz")
	model, err := lpreader.ReadString(lpText)

All three funnel through Read, which accepts any LineSource - a plain
file, a gzip-decompressed stream, or an in-memory buffer are all treated
identically:

	src, err := lpreader.NewFileSource("problem.lp")
	if err != nil {
		...
	}
	model, err := lpreader.Read(src)

Pipeline

Internally, reading a model runs four stages, leaves first:

	- lexer:      scans characters into raw punctuation/number/string tokens
	- classifier: rewrites raw tokens into section headers, variable and
	              constraint identifiers, signed constants, comparisons, etc.
	- splitter:   partitions the classified tokens by section
	- processors: one small recursive-descent parser per section, each
	              populating the model via a single variable-interning builder

Errors

Malformed input surfaces as a *ParseError (see AsParseError), wrapped
with additional stage context via github.com/pkg/errors as it
propagates out of Parse. No partial model is ever returned; reading
aborts on the first error.

Diagnostics

GetStatistics and PrintModel render a parsed Model for inspection; see
the lpdump command under cmd/lpdump for a worked example.
*/
package lpreader
