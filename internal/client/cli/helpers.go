package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword читает секрет с терминала без эха
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}

	return string(secret), nil
}
