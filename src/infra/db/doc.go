// Package db opens PostgreSQL connections for the finance API.
//
// There is no pool: every repository call opens its own connection through
// Factory.Open and releases it through WithConn before returning.
//
//	f := db.NewFactory(log)
//	err := db.WithConn(ctx, f, func(conn *pgx.Conn) error {
//	    return conn.QueryRow(ctx, q, id).Scan(&name)
//	})
//
// A connection that cannot be established because of settings or
// reachability comes back as *domain.DatabaseConnectionError.
package db
