// Package pure memoizes pure functions of one to three arguments.
//
// Tableize is not just a way to add memoization. It forces the question:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Each TableizeIxOy turns a function into a lazily filled table: the
// arguments are packed into one comparable key and looked up in a memo.Cache.
// The wrapped function runs once per distinct argument tuple.
//
// Arguments must be comparable. That is checked at compile time.
//
// The returned functions are not safe for concurrent use. Tables grow without
// bound; drop the function to release them.
//
// WARNING: Do not tableize impure functions (e.g., those depending on time, I/O, etc).
package pure
