// Package cmd implements the command-line interface for shelf. The root
// command starts the interactive catalog menu; `menu` does the same
// explicitly, and `version` prints the build version.
//
// Connection settings come from flags (--host, --port, --db, --timeout)
// or the REDIS_HOST / REDIS_PORT / REDIS_DB environment variables, with
// .env / .env.local loaded first.
package cmd
