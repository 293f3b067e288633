// Package match provides text normalization, Levenshtein distance
// calculation, and candidate ranking for mapping recognized screen text to
// stored resume fields.
//
// Key functions:
//   - NormalizeText: canonicalizes text for comparison
//   - Levenshtein / Similarity: edit distance and a [0,1] score
//   - Matcher.Match: ranks candidate fields for recognized text
//   - FindBestMatches: fuzzy label search for the template editor
package match
