// Command pinhash prints the Argon2id hash of an operator PIN, suitable for
// the auth.pin_hash config key (or the ZP_AUTH_PIN_HASH environment
// variable).
//
// Usage: pinhash <pin>
package main

import (
	"fmt"
	"os"

	"zippay/internal/service"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: pinhash <pin>")
		os.Exit(2)
	}

	hash, err := service.NewArgon2HashService().Hash(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing pin: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
