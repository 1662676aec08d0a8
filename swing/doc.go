// Package swing implements the SwingScript expression evaluator: a small
// line-oriented dialect with Hindi keywords that supports
//   - integer and float literals with the usual arithmetic (+, -, *, /),
//   - comparisons (==, !=, <, >, <=, >=) that yield 1 or 0,
//   - boolean logic via `aur` (and), `ya` (or) and `na` (not),
//   - variable binding with `yehai name = expr`.
//
// Source text flows through Scan, Parse and Evaluate; Engine wires the three
// stages together around a root Env seeded with the `null`, `sach` and `jhut`
// constants. Every stage reports failures as *Error values that can render a
// traceback and a caret pointer into the offending line.
package swing
