// Package puzzle wires individual daily solutions into something runnable.
//
// What:
//
//   - Solver is the two-part contract every day implements:
//     Part1/Part2 take the raw puzzle text and return one integer answer.
//   - Registry is a static, duplicate-free list of days.
//   - Runner reads <dir>/dayN.txt from an fs.FS, times both parts and logs
//     each answer through logrus.
//   - Lines, Blocks and Malformed are the parsing helpers days share.
//
// Errors:
//
//   - ErrParse:        a day could not understand its input (use Malformed).
//   - ErrUnknownDay:   the requested day is not registered.
//   - ErrDuplicateDay: two registrations claim the same day number.
//   - ErrNoInput:      the runner could not read the day's input file.
//
// Solvers never log or touch the filesystem; only the Runner does.
package puzzle
