package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"voice-agent/internal/auth"
)

// opstoken mints a bearer token for the /ops endpoints. Run it where
// OPS_JWT_SECRET is available and hand the token to the operator.
func main() {
	operator := flag.String("operator", "", "operator name embedded in the token")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if strings.TrimSpace(*operator) == "" {
		fmt.Fprintln(os.Stderr, "usage: opstoken -operator <name> [-ttl 12h]")
		os.Exit(2)
	}

	secret := os.Getenv("OPS_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "OPS_JWT_SECRET is required")
		os.Exit(1)
	}

	m, err := auth.NewManager(secret, os.Getenv("OPS_JWT_ISSUER"), os.Getenv("OPS_JWT_AUDIENCE"), *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := m.Issue(time.Now(), *operator)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
