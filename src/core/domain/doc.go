// Package domain contains the core finance model: users, accounts,
// categories, transactions and budgets, plus the errors the rest of the
// application branches on.
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Struct tags mirror the column names of the backing tables so rows can be
// returned to API clients unchanged.
package domain
