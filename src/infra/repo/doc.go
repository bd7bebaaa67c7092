// Package repo contains the PostgreSQL implementation of ports.FinanceRepository.
//
// Files are split per table (user_repo.go, account_repo.go, ...). Every
// method borrows a fresh connection through db.WithConn, issues one
// parameterized statement and lets WithConn close the connection.
package repo
