// Package decay implements the hover label engine of the dice map.
//
// Given a source cell, Propagate returns a LabelMap in which the source holds
// StartingValue and every other cell holds StartingValue - d·DecayStep, d being
// its shortest edge distance, as long as that value is at least MinimumValue.
// Farther cells are absent from the map and the renderer applies its own
// default (see Options.Fallback).
//
// A cell may be reachable through several paths. The engine keeps the largest
// label ever computed for a cell and expands a cell again whenever its label
// improves, so the final labels do not depend on visiting order.
//
// Options (YAML keys in parentheses):
//
//   - StartingValue (starting_value): default 50.
//   - DecayStep     (decay_step):     default 5, must be > 0.
//   - MinimumValue  (minimum_value):  default 20, must not exceed StartingValue.
//
// Complexity: O(C·H) time worst case, O(C) memory, with C cells within the
// horizon H = (StartingValue - MinimumValue) / DecayStep.
//
// Errors:
//
//   - ErrNilBoard:        nil board.
//   - ErrSourceNotFound:  source outside the board (wraps board.ErrCellNotFound).
//   - ErrOptionViolation: invalid options or configuration file.
package decay
