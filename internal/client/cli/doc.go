// Package cli is the interactive command-line client of the user service.
//
// It reads commands from stdin in a simple REPL:
//
//	register        create an account (name, email, password)
//	login           authenticate and keep the token for this session
//	update          change name, email or password of the logged-in account
//	delete [id]     delete an account; defaults to the logged-in one
//	whoami          show the logged-in account
//	logout          forget the token
//	help            list commands
//	exit | quit     leave
//
// Passwords are read without echo and wiped after use.
package cli
