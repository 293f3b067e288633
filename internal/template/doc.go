// Package template provides the YAML-backed resume template store: an
// ordered label→value mapping of personal data fields.
//
// Field order in the file is preserved across load/save and is the order
// the matcher uses as its tie-break key. Multi-line values are written as
// YAML literal blocks so the file stays hand-editable.
package template
